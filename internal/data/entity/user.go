package entity

type User struct {
	Base
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	FullName     string  `db:"full_name"`
	Phone        *string `db:"phone"`
}
