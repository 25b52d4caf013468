package dto

// UpdateProfileRequest carries the partial profile update for
// PUT /api/users/profile. Only non-nil fields overwrite, and the
// role-specific ones apply only to the matching role.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Headline *string `json:"headline,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`

	// Alumni specific
	GraduationYear *int    `json:"graduationYear,omitempty"`
	Company        *string `json:"company,omitempty"`
	JobTitle       *string `json:"jobTitle,omitempty"`

	// Student specific
	Major                  *string `json:"major,omitempty"`
	ExpectedGraduationYear *int    `json:"expectedGraduationYear,omitempty"`
}
