package models

import "time"

// Role defines the user role. Wire values match the values stored in the
// users.role column, so string(role) round-trips through the database.
type Role string

const (
	RoleStudent        Role = "Student"
	RoleAlumni         Role = "Alumni"
	RoleFaculty        Role = "Faculty"
	RoleInstituteAdmin Role = "Institute_Admin"
	RoleEmployer       Role = "Employer"
	RoleSuperAdmin     Role = "Super_Admin"
)

// Valid reports whether r is one of the six known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleFaculty, RoleInstituteAdmin, RoleEmployer, RoleSuperAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table.
type User struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role       Role      `json:"role" db:"role"`
	IsVerified bool      `json:"isVerified" db:"is_verified"`
	Profile    Profile   `json:"profile"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// Profile holds the role-dependent attribute bag. Alumni-specific and
// student-specific fields are pointers so they serialize only when set.
type Profile struct {
	Headline       string `json:"headline" db:"headline"`
	Bio            string `json:"bio" db:"bio"`
	ProfilePicture string `json:"profilePicture" db:"profile_picture"`
	Location       string `json:"location" db:"location"`

	// Alumni specific
	GraduationYear *int    `json:"graduationYear,omitempty" db:"graduation_year"`
	Company        *string `json:"company,omitempty" db:"company"`
	JobTitle       *string `json:"jobTitle,omitempty" db:"job_title"`

	// Student specific
	Major                  *string `json:"major,omitempty" db:"major"`
	ExpectedGraduationYear *int    `json:"expectedGraduationYear,omitempty" db:"expected_graduation_year"`
}
