package domain

import "time"

// All is the facet sentinel meaning "no constraint".
const All = "All"

type Medium string
type Experience string

const (
	MediumDigital   Medium = "Digital"
	MediumCanvas    Medium = "Canvas"
	MediumSculpture Medium = "Sculpture"
)

const (
	ExperienceEmerging     Experience = "Emerging"
	ExperienceMidCareer    Experience = "Mid-Career"
	ExperienceProfessional Experience = "Professional"
)

// Mediums lists the closed medium enumeration in display order.
func Mediums() []Medium {
	return []Medium{MediumDigital, MediumCanvas, MediumSculpture}
}

// Experiences lists the closed experience enumeration in display order.
func Experiences() []Experience {
	return []Experience{ExperienceEmerging, ExperienceMidCareer, ExperienceProfessional}
}

func (m Medium) Valid() bool {
	for _, v := range Mediums() {
		if m == v {
			return true
		}
	}
	return false
}

func (e Experience) Valid() bool {
	for _, v := range Experiences() {
		if e == v {
			return true
		}
	}
	return false
}

// SocialLinks holds the optional outbound links shown on an artist card
type SocialLinks struct {
	Instagram *string `json:"instagram" db:"instagram"`
	Twitter   *string `json:"twitter" db:"twitter"`
	Website   *string `json:"website" db:"website"`
}

// Artist is the public profile record listed in the Connectory
type Artist struct {
	ID         string      `json:"id" db:"id"`
	Name       string      `json:"name" db:"name"`
	Username   string      `json:"username" db:"username"`
	Bio        string      `json:"bio" db:"bio"`
	Avatar     string      `json:"avatar" db:"avatar_url"`
	CoverImage string      `json:"coverImage" db:"cover_image_url"`
	Location   string      `json:"location" db:"location"`
	Medium     Medium      `json:"medium" db:"medium"`
	Experience Experience  `json:"experience" db:"experience"`
	Social     SocialLinks `json:"social" db:"social"`
	Verified   bool        `json:"verified" db:"verified"`
	Followers  int         `json:"followers" db:"followers"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"`
}
