package script

import "time"

// SampleIDPrefix marks built-in demo scripts. Samples are listed alongside
// saved scripts when requested but are never persisted or deletable.
const SampleIDPrefix = "sample-"

// IsSample reports whether id belongs to a built-in sample script.
func IsSample(id string) bool {
	return len(id) >= len(SampleIDPrefix) && id[:len(SampleIDPrefix)] == SampleIDPrefix
}

// Samples returns the built-in demo scripts, newest first.
func Samples() []SavedScript {
	return []SavedScript{
		{
			ID:        "sample-1",
			CreatedAt: time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC),
			Script: Script{
				ScriptTitle:    "The Wonders of Ancient Egypt",
				Topic:          "Ancient Egypt",
				TargetAgeRange: "6-10",
				VideoLength:    "10 min",
				StyleTags:      []string{"Story-driven", "Fun Facts"},
				ResearchSummary: ResearchSummary{
					Overview: "Ancient Egypt was one of the longest-lasting civilizations in history, spanning over 3,000 years along the Nile River in northeastern Africa.",
					KeyEvents: []KeyEvent{
						{Date: "3100 BCE", Event: "Unification of Upper and Lower Egypt", Significance: "Created the first Egyptian dynasty and established one of the earliest nation-states."},
						{Date: "2560 BCE", Event: "Construction of the Great Pyramid of Giza", Significance: "Built as a tomb for Pharaoh Khufu, it remains one of the Seven Wonders of the Ancient World."},
						{Date: "1332 BCE", Event: "Tutankhamun becomes Pharaoh", Significance: "The boy king whose intact tomb was discovered in 1922, teaching us volumes about Egyptian burial practices."},
					},
					KeyFigures: []KeyFigure{
						{Name: "Cleopatra VII", Role: "Last active ruler of the Ptolemaic Kingdom of Egypt", Detail: "She could speak nine languages and was known for her intelligence more than her beauty."},
						{Name: "Ramesses II", Role: "Pharaoh of the Nineteenth Dynasty", Detail: "Often called Ramesses the Great, he lived to be 90 years old in an era when most people barely reached 40."},
					},
				},
				Scenes: []Scene{
					{
						SceneNumber:      1,
						SceneTitle:       "The Land of the Nile",
						Narration:        "Imagine a river so powerful it created an entire civilization! The Nile River flows through the desert like a green ribbon, bringing life to everything it touches. Every year, the Nile would flood, leaving behind rich, dark soil perfect for growing food.",
						VisualSuggestions: "Aerial shot of the Nile River cutting through golden desert. Animated transition showing the flood cycle with water rising and receding, leaving green fields.",
						DurationEstimate: "2 minutes",
						InteractiveElements: []InteractiveElement{
							{Type: "poll", Content: "Can you guess how long the Nile River is? A) 1,000 miles B) 4,132 miles C) 2,500 miles"},
						},
					},
					{
						SceneNumber:      2,
						SceneTitle:       "Building the Pyramids",
						Narration:        "The Great Pyramid of Giza took about 20 years to build. Thousands of workers moved more than 2 million stone blocks, each weighing as much as a small car! But how did they do it without modern machines?",
						VisualSuggestions: "3D reconstruction of pyramid construction. Workers moving limestone blocks on wooden sledges. Cross-section animation showing internal chambers.",
						DurationEstimate: "3 minutes",
						InteractiveElements: []InteractiveElement{
							{Type: "quiz", Content: "How many blocks were used to build the Great Pyramid?"},
							{Type: "clickable", Content: "Tap to explore inside the pyramid chambers"},
						},
					},
					{
						SceneNumber:      3,
						SceneTitle:       "Life as an Egyptian Kid",
						Narration:        "What was it like being a kid in Ancient Egypt? Well, kids played with toys, had pets, and even went to school! Egyptian children played with dolls, toy animals, and balls. They also loved board games.",
						VisualSuggestions: "Animated scene of Egyptian children playing Senet board game. Split screen comparing ancient toys with modern equivalents.",
						DurationEstimate: "2.5 minutes",
						InteractiveElements: []InteractiveElement{
							{Type: "comparison", Content: "Ancient Senet vs Modern Board Games"},
						},
					},
				},
				QuizQuestions: []QuizQuestion{
					{Question: "What river was essential to Ancient Egyptian civilization?", Options: []string{"The Amazon", "The Nile", "The Mississippi", "The Danube"}, CorrectAnswer: "The Nile", ScenePlacement: 1},
					{Question: "How long did it take to build the Great Pyramid?", Options: []string{"5 years", "10 years", "20 years", "50 years"}, CorrectAnswer: "20 years", ScenePlacement: 2},
				},
				FunFacts: []FunFact{
					{Fact: "Ancient Egyptians invented toothpaste! They made it from crushed eggshells and ox hooves.", WhyItsCool: "Next time you brush your teeth, thank the Egyptians!", ScenePlacement: 3},
					{Fact: "Egyptian kids shaved their heads except for one long braid called the \"sidelock of youth.\"", WhyItsCool: "It was their version of a cool hairstyle that showed everyone they were young.", ScenePlacement: 3},
				},
				ModernConnections: []ModernConnection{
					{HistoricalElement: "Egyptian hieroglyphs as a writing system", ModernLink: "Just like emojis today, hieroglyphs used pictures to communicate ideas and feelings!", ScenePlacement: 1},
					{HistoricalElement: "The ancient Egyptian calendar", ModernLink: "Our 365-day calendar is based on the one Egyptians created thousands of years ago.", ScenePlacement: 2},
				},
				IntroHook:       "What if I told you that kids your age once played with toys, went to school, and had pets -- but they did it all 4,000 years ago? Welcome to Ancient Egypt!",
				OutroCTA:        "Now you know the secrets of Ancient Egypt! Hit that subscribe button to travel through time with us every week. Next stop: Ancient Rome!",
				ProductionNotes: "Use warm, golden color palette throughout. Keep narration pace moderate for younger audience. Include pronunciation guides for Egyptian names.",
			},
		},
		{
			ID:        "sample-2",
			CreatedAt: time.Date(2026, 2, 19, 14, 15, 0, 0, time.UTC),
			Script: Script{
				ScriptTitle:    "The Space Race: To the Moon and Beyond",
				Topic:          "The Space Race",
				TargetAgeRange: "11-14",
				VideoLength:    "15 min",
				StyleTags:      []string{"Story-driven", "Modern Connections", "Quiz-heavy"},
				ResearchSummary: ResearchSummary{
					Overview: "The Space Race was a 20th-century competition between the USA and USSR to achieve spaceflight supremacy, culminating in the Apollo 11 moon landing.",
					KeyEvents: []KeyEvent{
						{Date: "1957", Event: "Sputnik Launch", Significance: "The USSR launched the first artificial satellite, shocking the world and igniting the Space Race."},
						{Date: "1969", Event: "Apollo 11 Moon Landing", Significance: "Neil Armstrong and Buzz Aldrin became the first humans to walk on the Moon."},
					},
					KeyFigures: []KeyFigure{
						{Name: "Neil Armstrong", Role: "First human to walk on the Moon", Detail: "He was so calm during the landing that his heart rate only reached 150 bpm."},
					},
				},
				Scenes: []Scene{
					{
						SceneNumber:      1,
						SceneTitle:       "The Starting Gun",
						Narration:        "It all started with a beep. On October 4, 1957, a small metal sphere orbiting Earth changed everything.",
						VisualSuggestions: "Dark space background with Sputnik model orbiting. Radio beep sound overlay. Cold War era newsreel footage.",
						DurationEstimate: "3 minutes",
						InteractiveElements: []InteractiveElement{
							{Type: "audio", Content: "Listen to the actual Sputnik signal"},
						},
					},
				},
				QuizQuestions: []QuizQuestion{
					{Question: "Which country launched Sputnik?", Options: []string{"USA", "USSR", "UK", "France"}, CorrectAnswer: "USSR", ScenePlacement: 1},
				},
				FunFacts: []FunFact{
					{Fact: "Astronauts grow up to 2 inches taller in space because their spines decompress without gravity!", WhyItsCool: "Imagine coming back from a trip and being taller than when you left.", ScenePlacement: 1},
				},
				ModernConnections: []ModernConnection{
					{HistoricalElement: "NASA technology from the Space Race", ModernLink: "Memory foam in your mattress, scratch-resistant lenses, and even water filters all came from NASA research!", ScenePlacement: 1},
				},
				IntroHook:       "Two superpowers. One Moon. And a race that changed humanity forever.",
				OutroCTA:        "The Space Race may be over, but the adventure continues. Subscribe to explore more history!",
				ProductionNotes: "Use dramatic orchestral music. Fast-paced editing for older audience.",
			},
		},
	}
}
