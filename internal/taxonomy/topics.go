package taxonomy

import "sort"

// SubTopic is a weighted refinement of a matching topic. The weight (0.5-1.0)
// scales how strongly a selected subtopic counts toward the mapped specialty.
type SubTopic struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// Topic is a coarse concern used by the free-text detector and the topic
// mapper. Topics map onto therapist specialty slugs.
type Topic struct {
	ID                string     `json:"id"`
	Label             string     `json:"label"`
	MappedSpecialties []string   `json:"mappedSpecialties"`
	SubTopics         []SubTopic `json:"subTopics"`
}

var MatchingTopics = []Topic{
	{
		ID:                "family",
		Label:             "Familie",
		MappedSpecialties: []string{"relationships"},
		SubTopics: []SubTopic{
			{ID: "divorce", Label: "Trennung & Scheidung", Weight: 1.0},
			{ID: "parenting", Label: "Erziehung", Weight: 0.8},
			{ID: "family_conflicts", Label: "Familienkonflikte", Weight: 0.9},
			{ID: "generation_conflicts", Label: "Generationenkonflikte", Weight: 0.7},
		},
	},
	{
		ID:                "anxiety",
		Label:             "Ängste",
		MappedSpecialties: []string{"anxiety"},
		SubTopics: []SubTopic{
			{ID: "social_anxiety", Label: "Soziale Ängste", Weight: 1.0},
			{ID: "panic_attacks", Label: "Panikattacken", Weight: 1.0},
			{ID: "phobias", Label: "Phobien", Weight: 0.8},
			{ID: "generalized_anxiety", Label: "Generalisierte Angst", Weight: 0.9},
		},
	},
	{
		ID:                "depression",
		Label:             "Depression",
		MappedSpecialties: []string{"depression"},
		SubTopics: []SubTopic{
			{ID: "chronic_sadness", Label: "Anhaltende Traurigkeit", Weight: 1.0},
			{ID: "lack_motivation", Label: "Antriebslosigkeit", Weight: 0.8},
			{ID: "grief", Label: "Trauer", Weight: 0.9},
			{ID: "loneliness", Label: "Einsamkeit", Weight: 0.8},
		},
	},
	{
		ID:                "relationships",
		Label:             "Beziehungen",
		MappedSpecialties: []string{"relationships"},
		SubTopics: []SubTopic{
			{ID: "couple_conflicts", Label: "Paarkonflikte", Weight: 1.0},
			{ID: "breakup", Label: "Trennung", Weight: 0.9},
			{ID: "dating_issues", Label: "Dating", Weight: 0.7},
			{ID: "intimacy", Label: "Intimität", Weight: 0.8},
		},
	},
	{
		ID:                "burnout",
		Label:             "Burnout",
		MappedSpecialties: []string{"burnout"},
		SubTopics: []SubTopic{
			{ID: "work_stress", Label: "Arbeitsstress", Weight: 1.0},
			{ID: "exhaustion", Label: "Erschöpfung", Weight: 0.9},
			{ID: "work_life_balance", Label: "Work-Life-Balance", Weight: 0.7},
		},
	},
	{
		ID:                "trauma",
		Label:             "Trauma",
		MappedSpecialties: []string{"trauma"},
		SubTopics: []SubTopic{
			{ID: "ptsd", Label: "PTBS", Weight: 1.0},
			{ID: "childhood_trauma", Label: "Kindheitstrauma", Weight: 1.0},
			{ID: "accident_trauma", Label: "Unfalltrauma", Weight: 0.9},
			{ID: "loss", Label: "Verlust", Weight: 0.8},
		},
	},
	{
		ID:                "addiction",
		Label:             "Sucht",
		MappedSpecialties: []string{"addiction"},
		SubTopics: []SubTopic{
			{ID: "alcohol", Label: "Alkohol", Weight: 1.0},
			{ID: "drugs", Label: "Drogen", Weight: 1.0},
			{ID: "behavioral_addiction", Label: "Verhaltenssucht", Weight: 0.8},
			{ID: "gaming", Label: "Gaming", Weight: 0.7},
		},
	},
	{
		ID:                "eating_disorders",
		Label:             "Essstörungen",
		MappedSpecialties: []string{"eating_disorders"},
		SubTopics: []SubTopic{
			{ID: "anorexia", Label: "Magersucht", Weight: 1.0},
			{ID: "bulimia", Label: "Bulimie", Weight: 1.0},
			{ID: "binge_eating", Label: "Binge-Eating", Weight: 0.9},
		},
	},
	{
		ID:                "adhd",
		Label:             "ADHS",
		MappedSpecialties: []string{"adhd"},
		SubTopics: []SubTopic{
			{ID: "concentration", Label: "Konzentration", Weight: 1.0},
			{ID: "impulsivity", Label: "Impulsivität", Weight: 0.9},
			{ID: "adult_adhd", Label: "ADHS im Erwachsenenalter", Weight: 0.8},
		},
	},
	{
		ID:                "self_care",
		Label:             "Selbstfürsorge",
		MappedSpecialties: []string{"burnout", "depression"},
		SubTopics: []SubTopic{
			{ID: "self_esteem", Label: "Selbstwert", Weight: 0.8},
			{ID: "boundaries", Label: "Grenzen setzen", Weight: 0.7},
			{ID: "life_changes", Label: "Lebensveränderungen", Weight: 0.7},
		},
	},
	{
		ID:                "stress",
		Label:             "Stress",
		MappedSpecialties: []string{"burnout"},
		SubTopics: []SubTopic{
			{ID: "chronic_stress", Label: "Chronischer Stress", Weight: 1.0},
			{ID: "exam_anxiety", Label: "Prüfungsangst", Weight: 0.8},
			{ID: "performance_pressure", Label: "Leistungsdruck", Weight: 0.9},
		},
	},
	{
		ID:                "sleep",
		Label:             "Schlaf",
		MappedSpecialties: []string{"depression", "anxiety"},
		SubTopics: []SubTopic{
			{ID: "insomnia", Label: "Schlaflosigkeit", Weight: 1.0},
			{ID: "nightmares", Label: "Albträume", Weight: 0.9},
			{ID: "sleep_anxiety", Label: "Angst vor dem Schlafen", Weight: 0.8},
		},
	},
}

// TopicByID returns the topic with the given id, or nil.
func TopicByID(id string) *Topic {
	for i := range MatchingTopics {
		if MatchingTopics[i].ID == id {
			return &MatchingTopics[i]
		}
	}
	return nil
}

// SpecialtiesFromTopics resolves topic ids to the deduplicated set of
// specialty slugs they map to. Unknown ids are skipped; order follows first
// appearance.
func SpecialtiesFromTopics(topicIDs []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range topicIDs {
		topic := TopicByID(id)
		if topic == nil {
			continue
		}
		for _, s := range topic.MappedSpecialties {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// RankSpecialties orders specialty suggestions by combined topic and
// subtopic evidence. Every mapped specialty of a detected topic scores a
// full point; a detected subtopic adds its weight to the primary specialty
// of its parent topic, so a strongly weighted refinement can promote a
// specialty past a broad topic hit. Unknown ids contribute nothing. Ties
// keep first-appearance order, so without subtopics the result matches
// SpecialtiesFromTopics.
func RankSpecialties(topicIDs, subTopicIDs []string) []string {
	scores := make(map[string]float64)
	var order []string
	add := func(specialty string, weight float64) {
		if specialty == "" {
			return
		}
		if _, ok := scores[specialty]; !ok {
			order = append(order, specialty)
		}
		scores[specialty] += weight
	}

	for _, id := range topicIDs {
		if topic := TopicByID(id); topic != nil {
			for _, s := range topic.MappedSpecialties {
				add(s, 1.0)
			}
		}
	}
	for _, id := range subTopicIDs {
		if st := subTopicByID(id); st != nil {
			add(SpecialtyForSubTopic(id), st.Weight)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	return order
}

func subTopicByID(id string) *SubTopic {
	for ti := range MatchingTopics {
		for si := range MatchingTopics[ti].SubTopics {
			if MatchingTopics[ti].SubTopics[si].ID == id {
				return &MatchingTopics[ti].SubTopics[si]
			}
		}
	}
	return nil
}

// AllSubTopicIDs returns the set of known subtopic ids, for input validation.
func AllSubTopicIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, topic := range MatchingTopics {
		for _, st := range topic.SubTopics {
			ids[st.ID] = true
		}
	}
	return ids
}

// SpecialtyForSubTopic returns the primary specialty of the topic a subtopic
// belongs to, or "" when the subtopic is unknown.
func SpecialtyForSubTopic(subTopicID string) string {
	for _, topic := range MatchingTopics {
		for _, st := range topic.SubTopics {
			if st.ID == subTopicID && len(topic.MappedSpecialties) > 0 {
				return topic.MappedSpecialties[0]
			}
		}
	}
	return ""
}
