package dto

// RegisterRequest represents a student registration request
type RegisterRequest struct {
	FullName     string `json:"fullName"`
	StudentNo    string `json:"studentNo"`
	Email        string `json:"email"`
	BuildingName string `json:"buildingName"`
	RoomNumber   string `json:"roomNumber"`
	Floor        string `json:"floor"`
	Password     string `json:"password"`
}

// StudentLoginRequest matches either the student number or the email
type StudentLoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AdminLoginRequest represents an admin login request
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
