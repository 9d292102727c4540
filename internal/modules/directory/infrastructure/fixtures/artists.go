// Package fixtures bundles the FlowArt seed profiles. They back the
// fixtures directory source and seed an empty database.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/saransh1220/flowart/internal/modules/directory/domain"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "demo123"

// Account is a seed profile together with its login email.
type Account struct {
	Email  string
	Artist domain.Artist
}

func str(s string) *string { return &s }

var seededAt = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

var accounts = []Account{
	{
		Email: "elena@flowart.demo",
		Artist: domain.Artist{
			Name:       "Elena Rodriguez",
			Username:   "elena_creates",
			Bio:        "Digital artist exploring the intersection of nature and technology. Creating immersive experiences through generative art.",
			Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1557672172-298e090bd0f1?w=1200&h=400&fit=crop",
			Location:   "Barcelona, Spain",
			Medium:     domain.MediumDigital,
			Experience: domain.ExperienceProfessional,
			Social:     domain.SocialLinks{Instagram: str("@elena_creates"), Twitter: str("@elena_art"), Website: str("elenarodriguez.art")},
			Verified:   true,
			Followers:  12400,
		},
	},
	{
		Email: "marcus@flowart.demo",
		Artist: domain.Artist{
			Name:       "Marcus Chen",
			Username:   "marcus_sculptor",
			Bio:        "Contemporary sculptor working with sustainable materials. Pushing boundaries of form and space.",
			Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1578301978693-85fa9c0320b9?w=1200&h=400&fit=crop",
			Location:   "Berlin, Germany",
			Medium:     domain.MediumSculpture,
			Experience: domain.ExperienceProfessional,
			Social:     domain.SocialLinks{Instagram: str("@marcussculpts"), Website: str("marcuschen.studio")},
			Verified:   true,
			Followers:  8900,
		},
	},
	{
		Email: "aisha@flowart.demo",
		Artist: domain.Artist{
			Name:       "Aisha Patel",
			Username:   "aisha_canvas",
			Bio:        "Abstract expressionist painter. Colors are my language, canvas is my voice.",
			Avatar:     "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1547826039-bfc35e0f1ea8?w=1200&h=400&fit=crop",
			Location:   "Mumbai, India",
			Medium:     domain.MediumCanvas,
			Experience: domain.ExperienceEmerging,
			Social:     domain.SocialLinks{Instagram: str("@aishapaints"), Twitter: str("@aisha_art")},
			Followers:  3200,
		},
	},
	{
		Email: "sophie@flowart.demo",
		Artist: domain.Artist{
			Name:       "Sophie Laurent",
			Username:   "sophie_digital",
			Bio:        "New media artist and creative technologist. Building worlds through code and imagination.",
			Avatar:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1550859492-d5da9d8e45f3?w=1200&h=400&fit=crop",
			Location:   "Paris, France",
			Medium:     domain.MediumDigital,
			Experience: domain.ExperienceProfessional,
			Social:     domain.SocialLinks{Instagram: str("@sophie_laurent"), Website: str("sophielaurent.digital")},
			Verified:   true,
			Followers:  15600,
		},
	},
	{
		Email: "jamal@flowart.demo",
		Artist: domain.Artist{
			Name:       "Jamal Washington",
			Username:   "jamal_mixed",
			Bio:        "Mixed media artist telling stories through collage and found objects. Every piece has a narrative.",
			Avatar:     "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1536924940846-227afb31e2a5?w=1200&h=400&fit=crop",
			Location:   "Brooklyn, NY",
			Medium:     domain.MediumCanvas,
			Experience: domain.ExperienceMidCareer,
			Social:     domain.SocialLinks{Instagram: str("@jamal_creates"), Twitter: str("@jamalwash")},
			Followers:  5700,
		},
	},
	{
		Email: "yuki@flowart.demo",
		Artist: domain.Artist{
			Name:       "Yuki Tanaka",
			Username:   "yuki_ceramic",
			Bio:        "Ceramic artist blending traditional Japanese techniques with modern minimalism.",
			Avatar:     "https://images.unsplash.com/photo-1489424731084-a5d8b219a5bb?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?w=1200&h=400&fit=crop",
			Location:   "Kyoto, Japan",
			Medium:     domain.MediumSculpture,
			Experience: domain.ExperienceProfessional,
			Social:     domain.SocialLinks{Instagram: str("@yuki_ceramics"), Website: str("yukitanaka.jp")},
			Verified:   true,
			Followers:  11200,
		},
	},
	{
		Email: "isabella@flowart.demo",
		Artist: domain.Artist{
			Name:       "Isabella Santos",
			Username:   "bella_art",
			Bio:        "Brazilian contemporary artist. Vibrant colors and bold expressions define my work.",
			Avatar:     "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=1200&h=400&fit=crop",
			Location:   "São Paulo, Brazil",
			Medium:     domain.MediumCanvas,
			Experience: domain.ExperienceProfessional,
			Social:     domain.SocialLinks{Instagram: str("@bella_creates"), Website: str("isabellasantos.art")},
			Verified:   true,
			Followers:  9800,
		},
	},
	{
		Email: "david@flowart.demo",
		Artist: domain.Artist{
			Name:       "David Kim",
			Username:   "david_digital",
			Bio:        "Digital sculptor and 3D artist. Creating immersive virtual installations.",
			Avatar:     "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1549887534-1541e9326642?w=1200&h=400&fit=crop",
			Location:   "Seoul, South Korea",
			Medium:     domain.MediumDigital,
			Experience: domain.ExperienceMidCareer,
			Social:     domain.SocialLinks{Instagram: str("@david_3d"), Twitter: str("@davidkim_art")},
			Followers:  6400,
		},
	},
	{
		Email: "olivia@flowart.demo",
		Artist: domain.Artist{
			Name:       "Olivia Moore",
			Username:   "olivia_photo",
			Bio:        "Fine art photographer capturing raw emotion and human connection.",
			Avatar:     "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=1200&h=400&fit=crop",
			Location:   "London, UK",
			Medium:     domain.MediumDigital,
			Experience: domain.ExperienceEmerging,
			Social:     domain.SocialLinks{Instagram: str("@olivia_lens"), Website: str("oliviamoore.photo")},
			Followers:  4200,
		},
	},
	{
		Email: "rafael@flowart.demo",
		Artist: domain.Artist{
			Name:       "Rafael Martinez",
			Username:   "rafael_sculptor",
			Bio:        "Metal sculptor creating large-scale public installations. Art for the people.",
			Avatar:     "https://images.unsplash.com/photo-1492562080023-ab3db95bfbce?w=400&h=400&fit=crop",
			CoverImage: "https://images.unsplash.com/photo-1578301978693-85fa9c0320b9?w=1200&h=400&fit=crop",
			Location:   "Mexico City, Mexico",
			Medium:     domain.MediumSculpture,
			Experience: domain.ExperienceProfessional,
			Social:     domain.SocialLinks{Instagram: str("@rafael_steel"), Twitter: str("@rafaelmartinez")},
			Verified:   true,
			Followers:  13500,
		},
	},
}

// ArtistID derives the stable id of a seeded profile from its username.
func ArtistID(username string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://flowart.demo/"+username)).String()
}

// Accounts returns a copy of the seed accounts, in seeding order.
func Accounts() []Account {
	out := make([]Account, len(accounts))
	for i, acc := range accounts {
		acc.Artist.ID = ArtistID(acc.Artist.Username)
		acc.Artist.CreatedAt = seededAt.Add(time.Duration(i) * time.Minute)
		acc.Artist.UpdatedAt = acc.Artist.CreatedAt
		out[i] = acc
	}
	return out
}

// Artists returns the seed profiles, in seeding order.
func Artists() []domain.Artist {
	accs := Accounts()
	out := make([]domain.Artist, len(accs))
	for i, acc := range accs {
		out[i] = acc.Artist
	}
	return out
}
