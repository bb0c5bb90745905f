package user

// MemoryDB is a map-backed Database. It is not safe for concurrent use.
type MemoryDB struct {
	users map[string]User
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{users: make(map[string]User)}
}

func (m *MemoryDB) GetUserByUsername(username string) (*User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *MemoryDB) CreateUser(user *User) error {
	if _, ok := m.users[user.Username]; ok {
		return ErrUserExists
	}
	m.users[user.Username] = *user
	return nil
}
