package entities

import "time"

// Known filter dimensions for the creative team. Brands and campaigns
// are open string sets; these are the values the seed data uses.
var (
	Brands    = []string{"Nike", "Coca-Cola", "Samsung", "Spotify", "Internal"}
	Pics      = []string{"Vito", "Rashid", "Rafael", "Sarah", "Mike"}
	Campaigns = []string{"Q4 Promo", "Holiday Special", "Brand Awareness", "Social Media Revamp", "General"}
)

// SeedUsers is the static roster. Users are not created or destroyed at
// runtime; role gates which operations each may perform.
func SeedUsers() []*User {
	return []*User{
		{ID: "admin1", Name: "Jane Doe", Role: RoleAdmin, Avatar: "JD"},
		{ID: "u1", Name: "Vito", Role: RoleMember, Avatar: "VT"},
		{ID: "u2", Name: "Rashid", Role: RoleMember, Avatar: "RS"},
		{ID: "u3", Name: "Rafael", Role: RoleMember, Avatar: "RF"},
		{ID: "u4", Name: "Sarah", Role: RoleMember, Avatar: "SR"},
	}
}

// SeedTasks is the fallback dataset used when no snapshot exists or the
// stored blob cannot be decoded.
func SeedTasks() []*Task {
	ts := func(value string) *time.Time {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			panic(err)
		}
		return &t
	}

	return []*Task{
		{
			ID:          "1",
			Title:       "Holiday Instagram Reels",
			Pic:         "Vito",
			Brand:       "Coca-Cola",
			Campaign:    "Holiday Special",
			Status:      StatusCompleted,
			StartDate:   NewDate(2025, time.November, 1),
			EndDate:     NewDate(2025, time.November, 15),
			Description: "Create 3 reels for the holiday season focused on sharing happiness.",
			Subtasks:    []string{"Scripting", "Asset Collection", "Editing", "Music Selection"},
			References: []Reference{
				{ID: "r1", Type: ProofTypeLink, Name: "Competitor Example (YouTube)", URL: "https://youtube.com"},
				{ID: "r2", Type: ProofTypeImage, Name: "Moodboard", URL: "https://images.unsplash.com/photo-1606907568273-53c42aa336d2?auto=format&fit=crop&q=80&w=200"},
			},
			ActualStartTime: ts("2025-11-14T09:00:00Z"),
			ActualEndTime:   ts("2025-11-14T15:30:00Z"),
			DurationMinutes: 390,
		},
		{
			ID:          "2",
			Title:       "Product Launch Key Visual",
			Pic:         "Rashid",
			Brand:       "Samsung",
			Campaign:    "Brand Awareness",
			Status:      StatusInProgress,
			StartDate:   NewDate(2025, time.November, 10),
			EndDate:     NewDate(2025, time.November, 20),
			Description: "Main KV for the new Galaxy series. Needs to look futuristic.",
			References: []Reference{
				{ID: "r3", Type: ProofTypeLink, Name: "Product Specs & Assets", URL: "#"},
			},
			ActualStartTime: ts("2025-11-18T10:00:00Z"),
		},
		{
			ID:              "3",
			Title:           "Website Hero Banner",
			Pic:             "Vito",
			Brand:           "Spotify",
			Campaign:        "Social Media Revamp",
			Status:          StatusCompleted,
			StartDate:       NewDate(2025, time.November, 5),
			EndDate:         NewDate(2025, time.November, 6),
			Description:     "Update homepage banner for wrapped campaign.",
			ActualStartTime: ts("2025-11-06T09:00:00Z"),
			ActualEndTime:   ts("2025-11-06T11:00:00Z"),
			DurationMinutes: 120,
		},
		{
			ID:          "4",
			Title:       "Internal Newsletter Design",
			Pic:         "Rafael",
			Brand:       "Internal",
			Campaign:    "General",
			Status:      StatusNotStarted,
			StartDate:   NewDate(2025, time.November, 18),
			EndDate:     NewDate(2025, time.November, 25),
			Description: "Monthly internal update layout.",
		},
		{
			ID:          "5",
			Title:       "Q1 Strategy Deck",
			Pic:         "Sarah",
			Brand:       "Nike",
			Campaign:    "Q4 Promo",
			Status:      StatusNotStarted,
			StartDate:   NewDate(2025, time.November, 1),
			EndDate:     NewDate(2025, time.November, 10),
			Description: "Slide deck for Q1 marketing strategy.",
		},
	}
}
