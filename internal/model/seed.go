package model

// SeedPosts returns the sample feed served before anything has been persisted.
// Every call builds fresh values.
func SeedPosts() []*Post {
	return []*Post{
		{
			ID: "2",
			Author: Author{
				ID:        "priyanka-mukherjee",
				Name:      "Priyanka Mukherjee",
				Avatar:    "cat.jpeg",
				Verified:  false,
				BadgeTier: BadgeSilver,
			},
			Timestamp:    "5 hours ago",
			CreatedOn:    1727409600,
			Content:      "Traditional saree day! Ready for pandal hopping with friends. Durga Maa's blessings to everyone!",
			Kind:         PostKindRegular,
			LikeCount:    87,
			CommentCount: 32,
			ShareCount:   3,
			Comments:     []*Comment{},
		},
		{
			ID: "1",
			Author: Author{
				ID:        "bikram-mondal",
				Name:      "Bikram Mondal",
				Avatar:    "my-image.jfif",
				Verified:  true,
				BadgeTier: BadgeGold,
			},
			Timestamp:    "2 hours ago",
			CreatedOn:    1727420400,
			Content:      "Celebrating the first day of Durga Puja with my family! The pandal decorations this year are absolutely stunning. #DurgaPuja2025 #PujoVibes",
			Kind:         PostKindRegular,
			Image:        "ekdaliya.jpeg",
			LikeCount:    124,
			CommentCount: 18,
			ShareCount:   5,
			Comments: []*Comment{
				{
					ID:     "c1",
					Author: CommentAuthor{Name: "Riya Das", Avatar: "/placeholder.svg"},
					Text:   "Looking beautiful! Which pandal is this?",
				},
				{
					ID:     "c2",
					Author: CommentAuthor{Name: "Amit Roy", Avatar: "/placeholder.svg"},
					Text:   "The decorations look amazing! 🙏",
				},
			},
		},
		{
			ID: "3",
			Author: Author{
				ID:        "rakesh-adak",
				Name:      "Rakesh Adak",
				Avatar:    "rakesh-bhai.jpg",
				Verified:  true,
				BadgeTier: BadgeDiamond,
			},
			Timestamp:    "Yesterday",
			CreatedOn:    1727341200,
			Content:      "The dhak beats are in the air! Can't wait for the evening aarti. Who else is visiting Ballygunge Puja today?",
			Kind:         PostKindRegular,
			Image:        "Maa.jpeg",
			LikeCount:    215,
			CommentCount: 42,
			ShareCount:   12,
			Comments:     []*Comment{},
		},
	}
}
