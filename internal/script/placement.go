package script

// Placement partitions a script's flat annotation lists into per-scene groups
// and the unplaced remainder. It is a pure derivation over the current
// document state; nothing here is stored.
//
// Scene numbers are agent-assigned and may repeat. Duplicate numbers are an
// accepted data-quality risk from the generator: an annotation placed on a
// duplicated number is grouped once (under the number, not the scene index)
// and every scene carrying that number displays the same group.
type Placement struct {
	QuizByScene        map[int][]QuizQuestion
	FactsByScene       map[int][]FunFact
	ConnectionsByScene map[int][]ModernConnection

	UnplacedQuiz        []QuizQuestion
	UnplacedFacts       []FunFact
	UnplacedConnections []ModernConnection
}

// Place computes the placement index for s. Annotations keep their original
// list order within each group, and the placed and unplaced sets partition
// each input list exactly.
func Place(s Script) Placement {
	known := make(map[int]bool, len(s.Scenes))
	for _, sc := range s.Scenes {
		known[sc.SceneNumber] = true
	}

	p := Placement{
		QuizByScene:         map[int][]QuizQuestion{},
		FactsByScene:        map[int][]FunFact{},
		ConnectionsByScene:  map[int][]ModernConnection{},
		UnplacedQuiz:        []QuizQuestion{},
		UnplacedFacts:       []FunFact{},
		UnplacedConnections: []ModernConnection{},
	}

	for _, q := range s.QuizQuestions {
		if known[q.ScenePlacement] {
			p.QuizByScene[q.ScenePlacement] = append(p.QuizByScene[q.ScenePlacement], q)
		} else {
			p.UnplacedQuiz = append(p.UnplacedQuiz, q)
		}
	}
	for _, f := range s.FunFacts {
		if known[f.ScenePlacement] {
			p.FactsByScene[f.ScenePlacement] = append(p.FactsByScene[f.ScenePlacement], f)
		} else {
			p.UnplacedFacts = append(p.UnplacedFacts, f)
		}
	}
	for _, c := range s.ModernConnections {
		if known[c.ScenePlacement] {
			p.ConnectionsByScene[c.ScenePlacement] = append(p.ConnectionsByScene[c.ScenePlacement], c)
		} else {
			p.UnplacedConnections = append(p.UnplacedConnections, c)
		}
	}

	return p
}

// HasUnplaced reports whether any annotation references a scene number that
// no scene in the document carries.
func (p Placement) HasUnplaced() bool {
	return len(p.UnplacedQuiz) > 0 || len(p.UnplacedFacts) > 0 || len(p.UnplacedConnections) > 0
}
