package model

import "regexp"

// Lesson is a read-only content fixture: video metadata plus the quiz
// graded at the end. Lessons are identified by the bounded id set
// lesson-1 .. lesson-6.
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Duration    int    `json:"duration"` // minutes
	VideoURL    string `json:"videoUrl"`
	Description string `json:"description"`
	Quiz        Quiz   `json:"quiz"`
}

var lessonIDPattern = regexp.MustCompile(`^lesson-[1-6]$`)

// ValidLessonID reports whether id matches the closed lesson catalog
// pattern lesson-1 through lesson-6.
func ValidLessonID(id string) bool {
	return lessonIDPattern.MatchString(id)
}

// LessonByID returns a lesson from the catalog.
func LessonByID(id string) (Lesson, bool) {
	for _, lesson := range LessonCatalog {
		if lesson.ID == id {
			return lesson, true
		}
	}
	return Lesson{}, false
}

// LessonCatalog is the fixture feed for the six-lesson English course.
var LessonCatalog = []Lesson{
	{
		ID:       "lesson-1",
		Title:    "Everyday Greetings and Introductions",
		Category: "A2",
		Duration: 45,
		VideoURL: "https://example.com/videos/lesson-1.mp4",
		Description: "Master basic greetings, introductions, and common social phrases. " +
			"Learn how to confidently meet new people and start conversations in English.",
		Quiz: Quiz{
			ID:    "lesson-1",
			Title: "Everyday Greetings and Introductions Quiz",
			Questions: []Question{
				{
					ID:     "q1",
					Type:   MultipleChoice,
					Prompt: `What is the correct response to "How are you?"`,
					Options: []string{
						"I am fine, thank you",
						"Yes, please",
						"No, thank you",
						"My name is John",
					},
					CorrectAnswer: "I am fine, thank you",
				},
				{
					ID:            "q2",
					Type:          FillInBlank,
					Prompt:        "My name ________ Sarah, and I am from London.",
					CorrectAnswer: "is",
				},
				{
					ID:            "q3",
					Type:          BinaryChoice,
					Prompt:        "Is 'Howdy' appropriate for formal business meetings?",
					Option1:       "Yes",
					Option2:       "No",
					CorrectAnswer: "No",
				},
				{
					ID:     "q4",
					Type:   MultipleCorrect,
					Prompt: "Which of the following are polite ways to greet someone? (Select all that apply)",
					Options: []string{
						"Good morning",
						"Nice to meet you",
						"Hey buddy",
						"How do you do?",
						"Sup?",
						"Pleased to make your acquaintance",
					},
					CorrectAnswers: []string{"Good morning", "Nice to meet you", "How do you do?", "Pleased to make your acquaintance"},
				},
			},
		},
	},
	{
		ID:       "lesson-2",
		Title:    "Describing People and Places",
		Category: "B1",
		Duration: 60,
		VideoURL: "https://example.com/videos/lesson-2.mp4",
		Description: "Expand your vocabulary for describing appearances, personalities, and locations. " +
			"Develop skills to paint vivid pictures with words.",
		Quiz: Quiz{
			ID:    "lesson-2",
			Title: "Describing People and Places Quiz",
			Questions: []Question{
				{
					ID:            "q1",
					Type:          MultipleChoice,
					Prompt:        "Which word describes a tall building?",
					Options:       []string{"High", "Tall", "Long", "Big"},
					CorrectAnswer: "Tall",
				},
				{
					ID:            "q2",
					Type:          BinaryChoice,
					Prompt:        "Is 'gorgeous' a compliment?",
					Option1:       "Yes",
					Option2:       "No",
					CorrectAnswer: "Yes",
				},
				{
					ID:     "q3",
					Type:   MultipleCorrect,
					Prompt: "Which words can describe a person's appearance? (Select all that apply)",
					Options: []string{
						"Tall",
						"Happy",
						"Blue-eyed",
						"Intelligent",
						"Slender",
						"Generous",
					},
					CorrectAnswers: []string{"Tall", "Blue-eyed", "Slender"},
				},
				{
					ID:            "q4",
					Type:          FillInBlank,
					Prompt:        "The city is very ________ with many parks and museums.",
					CorrectAnswer: "beautiful",
				},
			},
		},
	},
	{
		ID:       "lesson-3",
		Title:    "Complex Sentence Structures",
		Category: "B2",
		Duration: 75,
		VideoURL: "https://example.com/videos/lesson-3.mp4",
		Description: "Master advanced grammar including passive voice, conditionals, and subordinate clauses. " +
			"Speak and write with sophisticated sentence construction.",
		Quiz: Quiz{
			ID:    "lesson-3",
			Title: "Complex Sentence Structures Quiz",
			Questions: []Question{
				{
					ID:     "q1",
					Type:   MultipleChoice,
					Prompt: "Which sentence uses the passive voice correctly?",
					Options: []string{
						"The book was written by the author",
						"The author was writing the book",
						"The book writing was done",
						"Writing was the book done",
					},
					CorrectAnswer: "The book was written by the author",
				},
				{
					ID:            "q2",
					Type:          BinaryChoice,
					Prompt:        "Is conditional sentences always about the future?",
					Option1:       "Yes",
					Option2:       "No",
					CorrectAnswer: "No",
				},
				{
					ID:     "q3",
					Type:   MultipleCorrect,
					Prompt: "Which are correct ways to use subordinate clauses? (Select all that apply)",
					Options: []string{
						"After he finished his work",
						"Because the weather was nice",
						"Very quickly and happily",
						"Although it was difficult",
						"The big red car",
					},
					CorrectAnswers: []string{"After he finished his work", "Because the weather was nice", "Although it was difficult"},
				},
				{
					ID:            "q4",
					Type:          FillInBlank,
					Prompt:        "He can speak French, Spanish, and German ________ he is multilingual.",
					CorrectAnswer: "because",
				},
			},
		},
	},
	{
		ID:       "lesson-4",
		Title:    "Family and Daily Routines",
		Category: "A2",
		Duration: 55,
		VideoURL: "https://example.com/videos/lesson-4.mp4",
		Description: "Learn vocabulary and expressions for family relationships and everyday activities. " +
			"Describe your daily life in English with confidence.",
		Quiz: Quiz{
			ID:    "lesson-4",
			Title: "Family and Daily Routines Quiz",
			Questions: []Question{
				{
					ID:            "q1",
					Type:          BinaryChoice,
					Prompt:        "Is breakfast the most important meal of the day?",
					Option1:       "Yes",
					Option2:       "No",
					CorrectAnswer: "Yes",
				},
				{
					ID:     "q2",
					Type:   MultipleCorrect,
					Prompt: "Which are common family relationships? (Select all that apply)",
					Options: []string{
						"Mother",
						"Sibling",
						"Cousin",
						"Climate",
						"Uncle",
						"Material",
					},
					CorrectAnswers: []string{"Mother", "Sibling", "Cousin", "Uncle"},
				},
				{
					ID:     "q3",
					Type:   MultipleChoice,
					Prompt: "What is a typical morning routine?",
					Options: []string{
						"Wake up, shower, eat breakfast, go to work",
						"Sleep all day",
						"Watch TV all morning",
						"Play sports all day",
					},
					CorrectAnswer: "Wake up, shower, eat breakfast, go to work",
				},
				{
					ID:            "q4",
					Type:          FillInBlank,
					Prompt:        "I usually ________ dinner with my family at 6 PM.",
					CorrectAnswer: "eat",
				},
			},
		},
	},
	{
		ID:       "lesson-5",
		Title:    "Travel and Holiday Conversations",
		Category: "B1",
		Duration: 65,
		VideoURL: "https://example.com/videos/lesson-5.mp4",
		Description: "Develop practical communication skills for travel situations. " +
			"Book accommodations, ask for directions, and navigate new places.",
		Quiz: Quiz{
			ID:    "lesson-5",
			Title: "Travel and Holiday Conversations Quiz",
			Questions: []Question{
				{
					ID:     "q1",
					Type:   MultipleChoice,
					Prompt: "How do you ask for a hotel room?",
					Options: []string{
						"I would like to book a room, please",
						"Give me a room",
						"Room now",
						"Where is the room?",
					},
					CorrectAnswer: "I would like to book a room, please",
				},
				{
					ID:            "q2",
					Type:          BinaryChoice,
					Prompt:        "Is a passport required for international travel?",
					Option1:       "Yes",
					Option2:       "No",
					CorrectAnswer: "Yes",
				},
				{
					ID:     "q3",
					Type:   MultipleCorrect,
					Prompt: "Which documents might you need for travel? (Select all that apply)",
					Options: []string{
						"Passport",
						"Visa",
						"Driver's license",
						"Travel itinerary",
						"Library card",
						"Hotel confirmation",
					},
					CorrectAnswers: []string{"Passport", "Visa", "Travel itinerary", "Hotel confirmation"},
				},
				{
					ID:            "q4",
					Type:          FillInBlank,
					Prompt:        "The beach is a popular ________ destination for summer holidays.",
					CorrectAnswer: "vacation",
				},
			},
		},
	},
	{
		ID:       "lesson-6",
		Title:    "Business and Professional Communication",
		Category: "B2",
		Duration: 50,
		VideoURL: "https://example.com/videos/lesson-6.mp4",
		Description: "Master formal language for business meetings, presentations, and professional correspondence. " +
			"Excel in corporate English communication.",
		Quiz: Quiz{
			ID:    "lesson-6",
			Title: "Business and Professional Communication Quiz",
			Questions: []Question{
				{
					ID:     "q1",
					Type:   MultipleChoice,
					Prompt: "How do you formally greet a business colleague?",
					Options: []string{
						"Good morning, Mr. Smith",
						"Hey, what's up?",
						"Hello buddy",
						"Yo, how you doing?",
					},
					CorrectAnswer: "Good morning, Mr. Smith",
				},
				{
					ID:            "q2",
					Type:          FillInBlank,
					Prompt:        "Could you please send me the ________ of the meeting?",
					CorrectAnswer: "minutes",
				},
				{
					ID:     "q3",
					Type:   MultipleChoice,
					Prompt: "Which phrase is appropriate for a formal email?",
					Options: []string{
						"I look forward to hearing from you",
						"OK thanks",
						"Whatever",
						"Just send it",
					},
					CorrectAnswer: "I look forward to hearing from you",
				},
				{
					ID:            "q4",
					Type:          FillInBlank,
					Prompt:        "In a presentation, you should ________ your main points clearly.",
					CorrectAnswer: "explain",
				},
			},
		},
	},
}
