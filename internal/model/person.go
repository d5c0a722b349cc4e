package model

// Identity is a name and email pulled from the remote user directory.
type Identity struct {
	FullName string
	Email    string
}

// Person represents a row of the person_information table.
// Password fields are empty until a password has been attached.
type Person struct {
	ID           int64
	FullName     string
	Email        string
	Password     string
	PasswordHash string
	Complexity   int
}

// PersonResponse is the API view of a stored person.
type PersonResponse struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Complexity int    `json:"complexity,omitempty"`
}

// MaxSeedCount bounds a single seeding run.
const MaxSeedCount = 100

// SeedRequest asks for count synthetic people. A nil Count selects the default.
type SeedRequest struct {
	Count *int `json:"count"`
}

// SeededPerson describes the password attached to one seeded row.
type SeededPerson struct {
	ID         int64 `json:"id"`
	Length     int   `json:"length"`
	Tier       int   `json:"tier"`
	Complexity int   `json:"complexity"`
}

// SeedResponse summarizes a seeding run.
type SeedResponse struct {
	Seeded int            `json:"seeded"`
	People []SeededPerson `json:"people"`
}
