package seed

import "campusconnect/internal/model"

// Events returns the demo feed shown on a fresh install, replaced as soon as
// the first event collection is persisted.
func Events() []model.Event {
	return []model.Event{
		{
			ID:          "event-1",
			Title:       "TechSpark Hackathon",
			Image:       "https://picsum.photos/seed/e1/600/400",
			ImageHint:   "students coding",
			Description: "24-hour build sprint across all divisions. Teams of four, problem statements revealed at kickoff.",
			Tags:        []string{"Tech", "Competition"},
			Date:        "2026-09-18T09:00:00Z",
			Location:    "FOSS lab",
			CreatedBy:   "admin-kl",
			RSVPs:       []string{},
			Likes:       0,
			Comments:    []model.Comment{},
		},
		{
			ID:          "event-2",
			Title:       "Cloud Careers Talk",
			Image:       "https://picsum.photos/seed/e2/600/400",
			ImageHint:   "guest speaker",
			Description: "Alumni session on breaking into cloud engineering, followed by an open Q&A.",
			Tags:        []string{"Career", "Guest Lecture"},
			Date:        "2026-09-25T14:00:00Z",
			Location:    "AWS Lab",
			CreatedBy:   "f-tb",
			RSVPs:       []string{},
			Likes:       0,
			Comments:    []model.Comment{},
		},
		{
			ID:          "event-3",
			Title:       "Inter-Division Sports Day",
			Image:       "https://picsum.photos/seed/e3/600/400",
			ImageHint:   "sports ground",
			Description: "Annual track and field meet. Division teams register at the sports office by Friday.",
			Tags:        []string{"Sports"},
			Date:        "2026-10-02T08:00:00Z",
			Location:    "TA1",
			CreatedBy:   "admin-kl",
			RSVPs:       []string{},
			Likes:       0,
			Comments:    []model.Comment{},
		},
	}
}
