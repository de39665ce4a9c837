package taxonomy

// SymptomQuestion is one Likert-scale question (answered 0-3) attached to a
// subcategory. Question 1 and 4 are always asked, 2 and 3 only when the first
// answer indicates a heavier load.
type SymptomQuestion struct {
	ID     string `json:"id"`
	TextDE string `json:"textDE"`
	Order  int    `json:"order"`
}

// Subcategory is a refinement of a category, e.g. "panic" under "anxiety_panic".
type Subcategory struct {
	ID               string            `json:"id"`
	LabelDE          string            `json:"labelDE"`
	ParentCategoryID string            `json:"parentCategoryId"`
	SymptomQuestions []SymptomQuestion `json:"symptomQuestions"`
}

// Category is a top-level concern a client can pick in the matching wizard.
// MappedSpecialties lists the therapist specialty slugs the category counts
// toward when scoring.
type Category struct {
	ID                string        `json:"id"`
	LabelDE           string        `json:"labelDE"`
	IsCrisis          bool          `json:"isCrisis,omitempty"`
	MappedSpecialties []string      `json:"mappedSpecialties"`
	Subcategories     []Subcategory `json:"subcategories"`
}

// Categories is the full wizard taxonomy. The crisis entry carries no
// subcategories and no specialties: it routes straight to the crisis screen.
var Categories = []Category{
	{
		ID:                "family_relationships",
		LabelDE:           "Familie & Beziehung",
		MappedSpecialties: []string{"family", "couples"},
		Subcategories: []Subcategory{
			{
				ID:               "child",
				LabelDE:          "Kind",
				ParentCategoryID: "family_relationships",
				SymptomQuestions: []SymptomQuestion{
					{ID: "fam_child_q1", TextDE: "Hat sich deine Beziehung zu deinem Kind in der letzten Zeit negativ verändert?", Order: 1},
					{ID: "fam_child_q2", TextDE: "Hast du das Gefühl aktuell schwer oder gar keinen Zugang zu deinem Kind zu finden?", Order: 2},
					{ID: "fam_child_q3", TextDE: "Hast du das Gefühl, dass dein Kind aggressiv auf dich oder Angehörige reagiert?", Order: 3},
					{ID: "fam_child_q4", TextDE: "Hast du das Gefühl, dass dein Kind ängstlich/zurückgezogen oder schnell emotional (auch aggressiv) reagiert?", Order: 4},
				},
			},
			{
				ID:               "relationship",
				LabelDE:          "Beziehung",
				ParentCategoryID: "family_relationships",
				SymptomQuestions: []SymptomQuestion{
					{ID: "fam_rel_q1", TextDE: "Hast du das Gefühl nicht ausreichend gesehen und wertgeschätzt zu werden?", Order: 1},
					{ID: "fam_rel_q2", TextDE: "Fühlst du dich emotional missbraucht, vernachlässigt oder abgewertet?", Order: 2},
					{ID: "fam_rel_q3", TextDE: "Fühlst du dich aktuell von deinem Partner/in nicht verstanden? Nicht geliebt?", Order: 3},
					{ID: "fam_rel_q4", TextDE: "Hast du das Gefühl aktuell von deinem Partner/in manipuliert zu werden?", Order: 4},
				},
			},
			{
				ID:               "parents",
				LabelDE:          "Eltern",
				ParentCategoryID: "family_relationships",
				SymptomQuestions: []SymptomQuestion{
					{ID: "fam_par_q1", TextDE: "Hast du das Gefühl von deinen Eltern nicht ausreichend gesehen und wertgeschätzt zu werden?", Order: 1},
					{ID: "fam_par_q2", TextDE: "Fühlst du dich emotional von deinen Eltern missbraucht, vernachlässigt oder abgewertet?", Order: 2},
					{ID: "fam_par_q3", TextDE: "Fühlst du dich aktuell von deinen Eltern nicht verstanden? Nicht geliebt?", Order: 3},
					{ID: "fam_par_q4", TextDE: "Hast du das Gefühl aktuell von deinen Eltern manipuliert zu werden?", Order: 4},
				},
			},
			{
				ID:               "siblings",
				LabelDE:          "Geschwister",
				ParentCategoryID: "family_relationships",
				SymptomQuestions: []SymptomQuestion{
					{ID: "fam_sib_q1", TextDE: "Hast du das Gefühl keinen Zugang zu deinen Geschwistern zu finden?", Order: 1},
					{ID: "fam_sib_q2", TextDE: "Sind ständiger Machtkampf, Missgunst oder Lästerei Teil eurer Geschwisterbeziehung?", Order: 2},
					{ID: "fam_sib_q3", TextDE: "Machst du dir Sorgen um deine Geschwister bzw. der Distanz zwischen euch?", Order: 3},
					{ID: "fam_sib_q4", TextDE: "Erlebst du ständige Konflikte im Miteinander?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "work_career",
		LabelDE:           "Arbeit & Beruf",
		MappedSpecialties: []string{"burnout", "career"},
		Subcategories: []Subcategory{
			{
				ID:               "stress_overwhelm",
				LabelDE:          "Stress und Überforderung",
				ParentCategoryID: "work_career",
				SymptomQuestions: []SymptomQuestion{
					{ID: "work_stress_q1", TextDE: "Fühlst du dich überfordert in deiner Arbeit?", Order: 1},
					{ID: "work_stress_q2", TextDE: "Hast du Probleme mit der Motivation und Konzentration?", Order: 2},
					{ID: "work_stress_q3", TextDE: "Fehlt dir die Energie? Kämpfst du mit Erschöpfung?", Order: 3},
					{ID: "work_stress_q4", TextDE: "Kannst du berufliches und privates nur mehr schwer trennen?", Order: 4},
				},
			},
			{
				ID:               "workload_pressure",
				LabelDE:          "Arbeitsbelastung und Druck",
				ParentCategoryID: "work_career",
				SymptomQuestions: []SymptomQuestion{
					{ID: "work_load_q1", TextDE: "Hast du Schwierigkeiten Aufgaben termingerecht zu erledigen?", Order: 1},
					{ID: "work_load_q2", TextDE: "Ist dir gefühlt die allgemeine Belastung in der Arbeit zu hoch?", Order: 2},
					{ID: "work_load_q3", TextDE: "Fehlen dir die Rückzugsmöglichkeiten am Arbeitsplatz?", Order: 3},
					{ID: "work_load_q4", TextDE: "Bist du dir unsicher in der Kommunikation mit deinen Vorgesetzten oder KollegInnen?", Order: 4},
				},
			},
			{
				ID:               "interpersonal_work",
				LabelDE:          "Zwischenmenschliche Probleme",
				ParentCategoryID: "work_career",
				SymptomQuestions: []SymptomQuestion{
					{ID: "work_inter_q1", TextDE: "Fühlst du dich von deinem Vorgesetzten oder KollegInnen missverstanden?", Order: 1},
					{ID: "work_inter_q2", TextDE: "Hast du Angst Dinge direkt anzusprechen?", Order: 2},
					{ID: "work_inter_q3", TextDE: "Hast du das Gefühl ausgegrenzt zu werden?", Order: 3},
					{ID: "work_inter_q4", TextDE: "Fehlen dir Hilfsangebote oder Rücksicht von deinen KollegInnen?", Order: 4},
				},
			},
			{
				ID:               "career_discrimination",
				LabelDE:          "Karriere und Diskriminierung",
				ParentCategoryID: "work_career",
				SymptomQuestions: []SymptomQuestion{
					{ID: "work_career_q1", TextDE: "Fehlen dir Weiterentwicklungsmöglichkeiten in deiner Position?", Order: 1},
					{ID: "work_career_q2", TextDE: "Hast du Sorgen um eine langfristige Perspektive in deiner Arbeit?", Order: 2},
					{ID: "work_career_q3", TextDE: "Fühlst du dich ausgeschlossen und diskriminiert?", Order: 3},
					{ID: "work_career_q4", TextDE: "Hast du Sorge vor Vorurteilen und negativen Folgen?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "selfworth_personality",
		LabelDE:           "Selbstwert & Persönlichkeit",
		MappedSpecialties: []string{"identity"},
		Subcategories: []Subcategory{
			{
				ID:               "selfworth",
				LabelDE:          "Selbstwert",
				ParentCategoryID: "selfworth_personality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "self_worth_q1", TextDE: "Hast du das Gefühl dass du von anderen geschätzt wirst?", Order: 1},
					{ID: "self_worth_q2", TextDE: "Hast du Angst negativ beurteilt zu werden?", Order: 2},
					{ID: "self_worth_q3", TextDE: "Fühlst du dich oft unter Druck alles perfekt machen zu müssen?", Order: 3},
					{ID: "self_worth_q4", TextDE: "Beeinflusst dich die Meinung anderer stark?", Order: 4},
				},
			},
			{
				ID:               "selfconfidence",
				LabelDE:          "Selbstvertrauen",
				ParentCategoryID: "selfworth_personality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "self_conf_q1", TextDE: "Hast du das Gefühl deine Fähigkeiten gut zu kennen?", Order: 1},
					{ID: "self_conf_q2", TextDE: "Kannst du auf deine Entscheidungen vertrauen?", Order: 2},
					{ID: "self_conf_q3", TextDE: "Kannst du Feedback und Kritik gut annehmen?", Order: 3},
					{ID: "self_conf_q4", TextDE: "Fühlst du dich sicher vor Menschen zu präsentieren?", Order: 4},
				},
			},
			{
				ID:               "personality_issues",
				LabelDE:          "Probleme mit der eigenen Persönlichkeit",
				ParentCategoryID: "selfworth_personality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "self_pers_q1", TextDE: "Hast du das Gefühl dass deine Persönlichkeit oft Konflikte auslöst?", Order: 1},
					{ID: "self_pers_q2", TextDE: "Wirst du oft aufgrund deiner Persönlichkeit in Gruppen ausgeschlossen?", Order: 2},
					{ID: "self_pers_q3", TextDE: "Beeinflussen oftmalige Stimmungsschwankungen deinen Umgang mit anderen?", Order: 3},
					{ID: "self_pers_q4", TextDE: "Hast du Schwierigkeiten dich selbst zu strukturieren und Prioritäten zu setzen?", Order: 4},
				},
			},
			{
				ID:               "personality_development",
				LabelDE:          "Persönlichkeitsentwicklung",
				ParentCategoryID: "selfworth_personality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "self_dev_q1", TextDE: "Möchtest du Lernen Feedback und Anregungen gut umsetzen zu können?", Order: 1},
					{ID: "self_dev_q2", TextDE: "Hast du das Gefühl mehr über dich und deine Persönlichkeit erfahren zu wollen?", Order: 2},
					{ID: "self_dev_q3", TextDE: "Möchtest du dich und deine Fähigkeiten aktiv weiter entwickeln?", Order: 3},
					{ID: "self_dev_q4", TextDE: "Ist dir Selbstreflexion für die Entwicklung wichtig?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "sleep_restlessness",
		LabelDE:           "Schlafprobleme & Innere Unruhe",
		MappedSpecialties: []string{"sleep", "stress"},
		Subcategories: []Subcategory{
			{
				ID:               "falling_asleep",
				LabelDE:          "Einschlafen",
				ParentCategoryID: "sleep_restlessness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "sleep_fall_q1", TextDE: "Drehen sich deine Gedanken beim Einschlafen?", Order: 1},
					{ID: "sleep_fall_q2", TextDE: "Kannst du schlecht einschlafen?", Order: 2},
					{ID: "sleep_fall_q3", TextDE: "Dauert es länger beim einschlafen obwohl du schon Einschlafroutinen pflegst?", Order: 3},
					{ID: "sleep_fall_q4", TextDE: "Fühlt sich dein Körper oft unruhig an beim Einschlafen?", Order: 4},
				},
			},
			{
				ID:               "staying_asleep",
				LabelDE:          "Durchschlafen",
				ParentCategoryID: "sleep_restlessness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "sleep_stay_q1", TextDE: "Wachst du nachts häufig auf?", Order: 1},
					{ID: "sleep_stay_q2", TextDE: "Kannst du nach dem Aufwachen in der Nacht schwer wieder einschlafen?", Order: 2},
					{ID: "sleep_stay_q3", TextDE: "Fühlt sich dein Körper oft unruhig nach dem Aufwachen?", Order: 3},
					{ID: "sleep_stay_q4", TextDE: "Fühlst du dich tagsüber häufig matt und müde?", Order: 4},
				},
			},
			{
				ID:               "inner_restlessness",
				LabelDE:          "Innere Unruhe",
				ParentCategoryID: "sleep_restlessness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "sleep_rest_q1", TextDE: "Fühlst du dich häufig innerlich angespannt?", Order: 1},
					{ID: "sleep_rest_q2", TextDE: "Hast du das Gefühl schwer zur Ruhe zu kommen?", Order: 2},
					{ID: "sleep_rest_q3", TextDE: "Hast du das Gefühl ständig unter Strom zu stehen?", Order: 3},
					{ID: "sleep_rest_q4", TextDE: "Erlebst du innere Unruhe ohne erkennbare äußere Gründe?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "depression_emptiness",
		LabelDE:           "Niedergeschlagenheit & Innere Leere",
		MappedSpecialties: []string{"depression"},
		Subcategories: []Subcategory{
			{
				ID:               "feeling_down",
				LabelDE:          "Niedergeschlagen",
				ParentCategoryID: "depression_emptiness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "dep_down_q1", TextDE: "Fühlst du dich häufig niedergeschlagen und traurig?", Order: 1},
					{ID: "dep_down_q2", TextDE: "Hält deine Niedergeschlagenheit schon länger als zwei Wochen?", Order: 2},
					{ID: "dep_down_q3", TextDE: "Ziehst du dich häufig zurück?", Order: 3},
					{ID: "dep_down_q4", TextDE: "Fühlst du dich oft erschöpft und kraftlos?", Order: 4},
				},
			},
			{
				ID:               "inner_emptiness",
				LabelDE:          "Innere Leere",
				ParentCategoryID: "depression_emptiness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "dep_empty_q1", TextDE: "Hast du das Gefühl von innerer Leere?", Order: 1},
					{ID: "dep_empty_q2", TextDE: "Fällt es dir schwer Motivation für Tätigkeiten des Alltags aufzubringen?", Order: 2},
					{ID: "dep_empty_q3", TextDE: "Fällt es dir schwer dich über etwas zu freuen?", Order: 3},
					{ID: "dep_empty_q4", TextDE: "Siehst du deine Zukunft eher pessimistisch?", Order: 4},
				},
			},
			{
				ID:               "lack_of_drive",
				LabelDE:          "Fehlender Antrieb",
				ParentCategoryID: "depression_emptiness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "dep_drive_q1", TextDE: "Fühlst du dich trotz Schlaf nicht erholt?", Order: 1},
					{ID: "dep_drive_q2", TextDE: "Erlebst du kleine Aufgaben als sehr anstrengend?", Order: 2},
					{ID: "dep_drive_q3", TextDE: "Fühlst du dich oft erschöpft und kraftlos?", Order: 3},
					{ID: "dep_drive_q4", TextDE: "Fühlt sich dein Körper oft schwer an, meist morgens?", Order: 4},
				},
			},
			{
				ID:               "social_withdrawal",
				LabelDE:          "Sozialer Rückzug",
				ParentCategoryID: "depression_emptiness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "dep_social_q1", TextDE: "Meidest du soziale Situationen die dir vorher Freude bereitet haben?", Order: 1},
					{ID: "dep_social_q2", TextDE: "Ziehst du dich aktuell eher zurück?", Order: 2},
					{ID: "dep_social_q3", TextDE: "Fällt es dir schwer am sozialen Leben Teil zu nehmen? Fällt es dir schwer Kontakt zu halten?", Order: 3},
					{ID: "dep_social_q4", TextDE: "Meidest du alltägliche Situationen in Schule oder Beruf?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "anxiety_panic",
		LabelDE:           "Angst & Panik",
		MappedSpecialties: []string{"anxiety", "panic", "phobias"},
		Subcategories: []Subcategory{
			{
				ID:               "generalized_anxiety",
				LabelDE:          "Generalisierte Ängste",
				ParentCategoryID: "anxiety_panic",
				SymptomQuestions: []SymptomQuestion{
					{ID: "anx_gen_q1", TextDE: "Machst du dir häufig Sorgen über unterschiedliche Dinge des täglichen Lebens?", Order: 1},
					{ID: "anx_gen_q2", TextDE: "Nimmst du Angst als dauerhaften Grundzustand wahr?", Order: 2},
					{ID: "anx_gen_q3", TextDE: "Fällt es dir schwer dich zu konzentrieren?", Order: 3},
					{ID: "anx_gen_q4", TextDE: "Vermeidest du Situationen aus Angst, dass etwas passieren könnte?", Order: 4},
				},
			},
			{
				ID:               "health_anxiety",
				LabelDE:          "Hypochondrische Ängste",
				ParentCategoryID: "anxiety_panic",
				SymptomQuestions: []SymptomQuestion{
					{ID: "anx_health_q1", TextDE: "Machst du dir häufig Sorgen um deine körperliche Gesundheit?", Order: 1},
					{ID: "anx_health_q2", TextDE: "Hast du Angst ernsthaft krank zu sein oder zu werden?", Order: 2},
					{ID: "anx_health_q3", TextDE: "Nimmst du körperliche Veränderungen als intensiv wahr? Kontrollierst und beobachtest du deinen Körper regelmäßig?", Order: 3},
					{ID: "anx_health_q4", TextDE: "Suchst du häufig ärztliche Rückversicherung oder recherchierst Symptome im Internet?", Order: 4},
				},
			},
			{
				ID:               "panic",
				LabelDE:          "Panik",
				ParentCategoryID: "anxiety_panic",
				SymptomQuestions: []SymptomQuestion{
					{ID: "anx_panic_q1", TextDE: "Hattest du schon einmal eine plötzliche, starke Angstattacke?", Order: 1},
					{ID: "anx_panic_q2", TextDE: "Begleiten die Attacken oft körperliche Symptome wie Herzrasen, Zittern oder Atemschwierigkeiten?", Order: 2},
					{ID: "anx_panic_q3", TextDE: "Hast du Angst erneut eine Attacke zu erleben?", Order: 3},
					{ID: "anx_panic_q4", TextDE: "Fühlst du dich durch die Panikattacken stark belastet?", Order: 4},
				},
			},
			{
				ID:               "phobias",
				LabelDE:          "Phobien",
				ParentCategoryID: "anxiety_panic",
				SymptomQuestions: []SymptomQuestion{
					{ID: "anx_phob_q1", TextDE: "Hast du starke Angst vor bestimmten Situationen oder Objekten?", Order: 1},
					{ID: "anx_phob_q2", TextDE: "Tritt die Angst sofort auf, wenn du dem Objekt oder der Situation begegnest?", Order: 2},
					{ID: "anx_phob_q3", TextDE: "Vermeidest du bestimmte Situationen oder Orte wegen dieser Angst?", Order: 3},
					{ID: "anx_phob_q4", TextDE: "Begleiten diese Situationen körperliche Reaktionen wie Schweißausbrüche, Unwohlsein, Herzklopfen oder Zittern?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "stress_burnout",
		LabelDE:           "Stress & Burnout",
		MappedSpecialties: []string{"burnout", "stress"},
		Subcategories: []Subcategory{
			{
				ID:               "burnout",
				LabelDE:          "Burnout",
				ParentCategoryID: "stress_burnout",
				SymptomQuestions: []SymptomQuestion{
					{ID: "burn_q1", TextDE: "Fühlst du dich oft überfordert von deinen Aufgaben?", Order: 1},
					{ID: "burn_q2", TextDE: "Fällt es dir schwer Aufgaben zu beginnen oder abzuschließen?", Order: 2},
					{ID: "burn_q3", TextDE: "Fühlst du dich häufig emotional ausgelaugt und erschöpft?", Order: 3},
					{ID: "burn_q4", TextDE: "Fällt es dir schwer dich zu konzentrieren und Entscheidungen zu treffen?", Order: 4},
				},
			},
			{
				ID:               "stress",
				LabelDE:          "Stress",
				ParentCategoryID: "stress_burnout",
				SymptomQuestions: []SymptomQuestion{
					{ID: "stress_q1", TextDE: "Fühlst du dich häufig gestresst?", Order: 1},
					{ID: "stress_q2", TextDE: "Fällt es dir schwer Stress loszulassen oder abzuschalten?", Order: 2},
					{ID: "stress_q3", TextDE: "Macht dir dein Alltag häufig Stress und Druck?", Order: 3},
					{ID: "stress_q4", TextDE: "Fühlst du dich oft gereizt oder ungeduldig?", Order: 4},
				},
			},
			{
				ID:               "emotional_exhaustion",
				LabelDE:          "Emotionale / Mentale Erschöpfung",
				ParentCategoryID: "stress_burnout",
				SymptomQuestions: []SymptomQuestion{
					{ID: "emo_exh_q1", TextDE: "Hast du das Gefühl dass du häufig emotional/mental erschöpft bist?", Order: 1},
					{ID: "emo_exh_q2", TextDE: "Fällt es dir schwer positive Gefühle zu empfinden?", Order: 2},
					{ID: "emo_exh_q3", TextDE: "Macht es dir Sorgen dass du Aufgaben oder soziale Kontakte emotional nur schwer bewältigen kannst?", Order: 3},
					{ID: "emo_exh_q4", TextDE: "Nimmst du Verantwortung als emotional erschöpfend wahr?", Order: 4},
				},
			},
			{
				ID:               "physical_exhaustion",
				LabelDE:          "Körperliche Erschöpfung",
				ParentCategoryID: "stress_burnout",
				SymptomQuestions: []SymptomQuestion{
					{ID: "phys_exh_q1", TextDE: "Hast du das Gefühl trotz Schlaf körperlich nicht erholt zu sein?", Order: 1},
					{ID: "phys_exh_q2", TextDE: "Leidest du häufig unter Verspannungen, Kopf- oder Rückenschmerzen?", Order: 2},
					{ID: "phys_exh_q3", TextDE: "Begleiten körperliche Beschwerden deine Erschöpfung?", Order: 3},
					{ID: "phys_exh_q4", TextDE: "Vermeidest du körperliche Aktivitäten aus Angst vor Erschöpfung?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "grief_loss",
		LabelDE:           "Trauer & Verlust",
		MappedSpecialties: []string{"grief"},
		Subcategories: []Subcategory{
			{
				ID:               "loss_person",
				LabelDE:          "Trauer und Verlust von nahestehenden Personen",
				ParentCategoryID: "grief_loss",
				SymptomQuestions: []SymptomQuestion{
					{ID: "grief_person_q1", TextDE: "Denkst du häufig an die verstorbene Person?", Order: 1},
					{ID: "grief_person_q2", TextDE: "Fühlst du dich traurig und niedergeschlagen wegen des Verlusts?", Order: 2},
					{ID: "grief_person_q3", TextDE: "Hast du Schuldgefühle und Selbstvorwürfe im Zusammenhang mit dem Verlust?", Order: 3},
					{ID: "grief_person_q4", TextDE: "Erlebst du emotionale Ausbrüche wie Weinen oder Traurigkeit?", Order: 4},
				},
			},
			{
				ID:               "loss_relationship",
				LabelDE:          "Trauer und Verlust von Beziehungen",
				ParentCategoryID: "grief_loss",
				SymptomQuestions: []SymptomQuestion{
					{ID: "grief_rel_q1", TextDE: "Fühlst du dich traurig und niedergeschlagen wegen des Verlusts?", Order: 1},
					{ID: "grief_rel_q2", TextDE: "Hast du Schuldgefühle und Selbstvorwürfe im Zusammenhang mit dem Verlust?", Order: 2},
					{ID: "grief_rel_q3", TextDE: "Grübelst du über mögliche Fehler oder Ursachen des Verlusts?", Order: 3},
					{ID: "grief_rel_q4", TextDE: "Meidest du soziale Kontakte oder Orte, weil sie dich an den Verlust erinnern?", Order: 4},
				},
			},
			{
				ID:               "loss_career",
				LabelDE:          "Trauer und Verlust von Beruf oder Besitz",
				ParentCategoryID: "grief_loss",
				SymptomQuestions: []SymptomQuestion{
					{ID: "grief_career_q1", TextDE: "Hast du deinen Job oder eine Stelle verloren?", Order: 1},
					{ID: "grief_career_q2", TextDE: "Hast du durch Krankheit oder Misserfolg etwas Wichtiges in deinem Leben verloren?", Order: 2},
					{ID: "grief_career_q3", TextDE: "Hast du materielle Gegenstände die dir wichtig waren verloren (Haus, Wohnung, Geld etc)?", Order: 3},
					{ID: "grief_career_q4", TextDE: "Hast du durch einen Unfall oder Diebstahl etwas wichtiges verloren?", Order: 4},
				},
			},
			{
				ID:               "spiritual_aspects",
				LabelDE:          "Spirituelle Aspekte",
				ParentCategoryID: "grief_loss",
				SymptomQuestions: []SymptomQuestion{
					{ID: "grief_spirit_q1", TextDE: "Beschäftigt dich nach dem Verlust die Frage nach dem Sinn im Leben?", Order: 1},
					{ID: "grief_spirit_q2", TextDE: "Hast du das Gefühl dass dein Leben ohne den Verlust nicht mehr dasselbe ist?", Order: 2},
					{ID: "grief_spirit_q3", TextDE: "Findest du Trost im Glauben oder spirituellen Praktiken?", Order: 3},
					{ID: "grief_spirit_q4", TextDE: "Hast du das Gefühl, dass der/die Verstorbene oder der Verlust auf einer spirituellen Ebene weiterhin bei dir präsent ist?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "trauma_ptsd",
		LabelDE:           "Trauma & PTBS",
		MappedSpecialties: []string{"trauma"},
		Subcategories: []Subcategory{
			{
				ID:               "acute_trauma",
				LabelDE:          "Akutes Trauma",
				ParentCategoryID: "trauma_ptsd",
				SymptomQuestions: []SymptomQuestion{
					{ID: "trauma_acute_q1", TextDE: "Hast du ein plötzlich aufgetretenes belastendes Ereignis erlebt, das dich stark verängstigt hat?", Order: 1},
					{ID: "trauma_acute_q2", TextDE: "Hattest du während des Ereignisses oder unmittelbar danach Angst um dein Leben oder deine Sicherheit?", Order: 2},
					{ID: "trauma_acute_q3", TextDE: "Hast du nach dem Ereignis häufig Angst oder Panik gespürt?", Order: 3},
					{ID: "trauma_acute_q4", TextDE: "Tauchen plötzlich Bilder oder Erinnerungen an das Ereignis auf?", Order: 4},
				},
			},
			{
				ID:               "ptsd",
				LabelDE:          "Post Traumatische Belastungsreaktion",
				ParentCategoryID: "trauma_ptsd",
				SymptomQuestions: []SymptomQuestion{
					{ID: "trauma_ptsd_q1", TextDE: "Erlebst du wiederholt belastende Erinnerungen an ein traumatisches Ereignis?", Order: 1},
					{ID: "trauma_ptsd_q2", TextDE: "Fühlst du dich manchmal, als würdest du das Ereignis erneut erleben?", Order: 2},
					{ID: "trauma_ptsd_q3", TextDE: "Fühlst du dich durch die Symptome oft überfordert und belasten sie deine Alltagsaktivitäten?", Order: 3},
					{ID: "trauma_ptsd_q4", TextDE: "Haben sich deine Beziehungen zu anderen Menschen verändert (Distanz, Misstrauen)?", Order: 4},
				},
			},
			{
				ID:               "cumulative_trauma",
				LabelDE:          "Kumulierte Trauma",
				ParentCategoryID: "trauma_ptsd",
				SymptomQuestions: []SymptomQuestion{
					{ID: "trauma_cum_q1", TextDE: "Hast du über längere Zeit wiederholt belastende oder traumatische Ereignisse erlebt?", Order: 1},
					{ID: "trauma_cum_q2", TextDE: "Fühlst du dich häufig niedergeschlagen oder traurig?", Order: 2},
					{ID: "trauma_cum_q3", TextDE: "Denkst du häufig an vergangene belastende Ereignisse?", Order: 3},
					{ID: "trauma_cum_q4", TextDE: "Beeinträchtigen die Symptome deine Arbeit, Schule oder alltägliche Aufgaben?", Order: 4},
				},
			},
			{
				ID:               "relationship_trauma",
				LabelDE:          "Verlust- und Beziehungstrauma",
				ParentCategoryID: "trauma_ptsd",
				SymptomQuestions: []SymptomQuestion{
					{ID: "trauma_rel_q1", TextDE: "Fühlst du dich häufig traurig oder niedergeschlagen durch den Verlust einer nahestehenden Person oder Beziehung?", Order: 1},
					{ID: "trauma_rel_q2", TextDE: "Denkst du häufig über vergangene Verluste oder Beziehungsabbrüche nach?", Order: 2},
					{ID: "trauma_rel_q3", TextDE: "Meidest du soziale Kontakte aus Angst vor neuen Verlusten oder Enttäuschungen?", Order: 3},
					{ID: "trauma_rel_q4", TextDE: "Hast du Schwierigkeiten, neue Beziehungen aufzubauen oder Nähe zuzulassen?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "psychosomatic",
		LabelDE:           "Psychosomatik",
		MappedSpecialties: []string{"psychosomatic"},
		Subcategories: []Subcategory{
			{
				ID:               "psyche_to_body",
				LabelDE:          "Psychosomatik – Psyche wirkt auf Körper",
				ParentCategoryID: "psychosomatic",
				SymptomQuestions: []SymptomQuestion{
					{ID: "psycho_pb_q1", TextDE: "Hast du häufig körperliche Beschwerden ohne klare medizinische Ursache?", Order: 1},
					{ID: "psycho_pb_q2", TextDE: "Verstärken sich deine körperlichen Beschwerden in Stresssituationen?", Order: 2},
					{ID: "psycho_pb_q3", TextDE: "Hast du öfter Kopfschmerzen, Schwindel, Magen-Darm-Beschwerden, Verspannungen oder Schmerzen an Muskeln und Gelenken?", Order: 3},
					{ID: "psycho_pb_q4", TextDE: "Beeinträchtigen die körperlichen Beschwerden deinen Alltag oder deine Leistungsfähigkeit?", Order: 4},
				},
			},
			{
				ID:               "body_to_psyche",
				LabelDE:          "Somatopsyche – Körper wirkt auf Psyche",
				ParentCategoryID: "psychosomatic",
				SymptomQuestions: []SymptomQuestion{
					{ID: "psycho_bp_q1", TextDE: "Spürst du häufig Schmerz der dazu führt, dass du dich häufig traurig oder niedergeschlagen fühlst?", Order: 1},
					{ID: "psycho_bp_q2", TextDE: "Hast du durch den Schmerz oder der Einschränkung Angst oder Sorgen um deine Gesundheit?", Order: 2},
					{ID: "psycho_bp_q3", TextDE: "Grübelst du häufig über deine körperliche Belastung oder Einschränkung?", Order: 3},
					{ID: "psycho_bp_q4", TextDE: "Fühlst du dich oft hilflos oder überwältigt durch den Schmerz oder der Einschränkung?", Order: 4},
				},
			},
			{
				ID:               "stress_physical",
				LabelDE:          "Stressbedingte körperliche Beschwerden",
				ParentCategoryID: "psychosomatic",
				SymptomQuestions: []SymptomQuestion{
					{ID: "psycho_stress_q1", TextDE: "Hast du unter Stress häufiger Muskelverspannungen, Kopf oder Rückenschmerzen?", Order: 1},
					{ID: "psycho_stress_q2", TextDE: "Verstärken sich körperliche Beschwerden in belastenden Situationen?", Order: 2},
					{ID: "psycho_stress_q3", TextDE: "Machst du dir Sorgen über die körperlichen Beschwerden, die durch Stress entstehen?", Order: 3},
					{ID: "psycho_stress_q4", TextDE: "Beeinträchtigen die stressbedingten Beschwerden deinen Alltag, Arbeit oder soziale Aktivitäten?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "addiction",
		LabelDE:           "Sucht & Abhängigkeit",
		MappedSpecialties: []string{"addiction"},
		Subcategories: []Subcategory{
			{
				ID:               "substance_alcohol",
				LabelDE:          "Substanzabhängig (Alkohol, Nikotin)",
				ParentCategoryID: "addiction",
				SymptomQuestions: []SymptomQuestion{
					{ID: "addict_alc_q1", TextDE: "Hast du häufig starkes Verlangen (Craving) nach der Substanz?", Order: 1},
					{ID: "addict_alc_q2", TextDE: "Vernachlässigst du Arbeit, Schule, Hobbys oder Familie wegen des Konsums?", Order: 2},
					{ID: "addict_alc_q3", TextDE: "Hast du bemerkt, dass du höhere Mengen brauchst, um die gleiche Wirkung zu spüren?", Order: 3},
					{ID: "addict_alc_q4", TextDE: "Treten körperliche oder psychische Beschwerden auf, wenn du den Konsum reduzierst oder absetzt?", Order: 4},
				},
			},
			{
				ID:               "substance_drugs",
				LabelDE:          "Substanzabhängig (Drogen, Medikamente)",
				ParentCategoryID: "addiction",
				SymptomQuestions: []SymptomQuestion{
					{ID: "addict_drug_q1", TextDE: "Hast du häufig starkes Verlangen (Craving) nach der Substanz?", Order: 1},
					{ID: "addict_drug_q2", TextDE: "Vernachlässigst du Arbeit, Schule, Hobbys oder Familie wegen des Konsums?", Order: 2},
					{ID: "addict_drug_q3", TextDE: "Hast du bemerkt, dass du höhere Mengen brauchst, um die gleiche Wirkung zu spüren?", Order: 3},
					{ID: "addict_drug_q4", TextDE: "Treten körperliche oder psychische Beschwerden auf, wenn du den Konsum reduzierst oder absetzt?", Order: 4},
				},
			},
			{
				ID:               "behavioral_gambling",
				LabelDE:          "Verhaltensabhängig (Glückspiel, Internet, Smartphone etc.)",
				ParentCategoryID: "addiction",
				SymptomQuestions: []SymptomQuestion{
					{ID: "addict_gamb_q1", TextDE: "Hast du häufig starkes Verlangen (Craving) nach dem Verhalten?", Order: 1},
					{ID: "addict_gamb_q2", TextDE: "Vernachlässigst du Arbeit, Schule, Hobbys oder Familie wegen des Verhaltens?", Order: 2},
					{ID: "addict_gamb_q3", TextDE: "Hat die Abhängigkeit Konflikte mit Familie oder Partner verursacht?", Order: 3},
					{ID: "addict_gamb_q4", TextDE: "Treten körperliche oder psychische Beschwerden auf, wenn du das Verhalten reduzierst oder absetzt?", Order: 4},
				},
			},
			{
				ID:               "behavioral_other",
				LabelDE:          "Verhaltensabhängig (Einkaufen, Essen, Sport, Sex etc.)",
				ParentCategoryID: "addiction",
				SymptomQuestions: []SymptomQuestion{
					{ID: "addict_other_q1", TextDE: "Hast du häufig starkes Verlangen (Craving) nach dem Verhalten?", Order: 1},
					{ID: "addict_other_q2", TextDE: "Vernachlässigst du Arbeit, Schule, Hobbys oder Familie wegen des Verhaltens?", Order: 2},
					{ID: "addict_other_q3", TextDE: "Hat die Abhängigkeit Konflikte mit Familie oder Partner verursacht?", Order: 3},
					{ID: "addict_other_q4", TextDE: "Treten körperliche oder psychische Beschwerden auf, wenn du das Verhalten reduzierst oder absetzt?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "ocd",
		LabelDE:           "Zwangsgedanken und -handlungen",
		MappedSpecialties: []string{"ocd"},
		Subcategories: []Subcategory{
			{
				ID:               "compulsive_actions",
				LabelDE:          "Zwangshandlungen",
				ParentCategoryID: "ocd",
				SymptomQuestions: []SymptomQuestion{
					{ID: "ocd_act_q1", TextDE: "Hast du wiederkehrende Handlungen, die du ausführen musst, um Angst oder Unruhe zu reduzieren?", Order: 1},
					{ID: "ocd_act_q2", TextDE: "Beeinträchtigen die Zwangshandlungen deine Arbeit, Schule oder Alltagstätigkeiten?", Order: 2},
					{ID: "ocd_act_q3", TextDE: "Verspürst du Angst oder Unruhe, wenn du die Handlungen nicht ausführst?", Order: 3},
					{ID: "ocd_act_q4", TextDE: "Fühlst du dich nach Durchführung der Zwangshandlungen kurzzeitig beruhigt oder erleichtert?", Order: 4},
				},
			},
			{
				ID:               "obsessive_thoughts",
				LabelDE:          "Zwangsgedanken",
				ParentCategoryID: "ocd",
				SymptomQuestions: []SymptomQuestion{
					{ID: "ocd_thought_q1", TextDE: "Hast du wiederkehrende Gedanken, die du als aufdringlich oder belastend empfindest?", Order: 1},
					{ID: "ocd_thought_q2", TextDE: "Tauchen diese Gedanken täglich oder mehrmals täglich auf und halten länger an?", Order: 2},
					{ID: "ocd_thought_q3", TextDE: "Beeinträchtigen die Gedanken deine Arbeit, Schule oder alltägliche Aufgaben?", Order: 3},
					{ID: "ocd_thought_q4", TextDE: "Fühlst du dich oft unfähig, die Gedanken zu unterbrechen oder zu stoppen?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "eating_disorders",
		LabelDE:           "Schwierigkeiten mit dem Essen",
		MappedSpecialties: []string{"eating_disorders"},
		Subcategories: []Subcategory{
			{
				ID:               "anorexia",
				LabelDE:          "Magersucht (Anorexie)",
				ParentCategoryID: "eating_disorders",
				SymptomQuestions: []SymptomQuestion{
					{ID: "eat_anor_q1", TextDE: "Verzichtest du häufig auf Mahlzeiten oder isst nur sehr wenig?", Order: 1},
					{ID: "eat_anor_q2", TextDE: "Hast du Angst vor Gewichtszunahme, auch wenn dein Gewicht normal oder niedrig ist?", Order: 2},
					{ID: "eat_anor_q3", TextDE: "Fühlst du dich trotz Untergewicht zu dick oder unzufrieden mit deinem Körper?", Order: 3},
					{ID: "eat_anor_q4", TextDE: "Fühlst du Schuld- oder Schamgefühle nach dem Essen oder bei Mahlzeiten?", Order: 4},
				},
			},
			{
				ID:               "bulimia",
				LabelDE:          "Ess-Brech-Sucht (Bulimie)",
				ParentCategoryID: "eating_disorders",
				SymptomQuestions: []SymptomQuestion{
					{ID: "eat_bul_q1", TextDE: "Hast du wiederkehrende Essanfälle, bei denen du große Mengen Nahrung in kurzer Zeit isst?", Order: 1},
					{ID: "eat_bul_q2", TextDE: "Betreibst du anschließend Maßnahmen, um eine Gewichtszunahme zu verhindern (Erbrechen, Abführmittel, exzessiver Sport)?", Order: 2},
					{ID: "eat_bul_q3", TextDE: "Fühlst du dich trotz normalem Gewicht oder Untergewicht zu dick oder unzufrieden mit deinem Körper?", Order: 3},
					{ID: "eat_bul_q4", TextDE: "Fühlst du Schuld- oder Schamgefühle nach Essanfällen oder kompensatorischem Verhalten?", Order: 4},
				},
			},
			{
				ID:               "binge_eating",
				LabelDE:          "Binge-Eating-Störung",
				ParentCategoryID: "eating_disorders",
				SymptomQuestions: []SymptomQuestion{
					{ID: "eat_binge_q1", TextDE: "Hast du wiederholt Essanfälle, bei denen du große Mengen Nahrung in kurzer Zeit isst?", Order: 1},
					{ID: "eat_binge_q2", TextDE: "Fühlst du dich nach den Essanfällen unwohl oder übermäßig voll?", Order: 2},
					{ID: "eat_binge_q3", TextDE: "Fühlst du dich trotz normalem Gewicht oder Untergewicht zu dick oder unzufrieden mit deinem Körper?", Order: 3},
					{ID: "eat_binge_q4", TextDE: "Fühlst du Schuld- oder Schamgefühle nach Essanfällen oder kompensatorischem Verhalten?", Order: 4},
				},
			},
			{
				ID:               "orthorexia_arfid",
				LabelDE:          "Sonstiges abnormes Essverhalten (Orthorexie, ARFID)",
				ParentCategoryID: "eating_disorders",
				SymptomQuestions: []SymptomQuestion{
					{ID: "eat_ortho_q1", TextDE: "Kontrollierst du streng, welche Lebensmittel du isst, um sie als \"gesund\" zu bewerten?", Order: 1},
					{ID: "eat_ortho_q2", TextDE: "Vermeidest du bestimmte Lebensmittelgruppen oder -texturen stark?", Order: 2},
					{ID: "eat_ortho_q3", TextDE: "Fühlst du dich trotz normalem Gewicht oder Untergewicht zu dick oder unzufrieden mit deinem Körper?", Order: 3},
					{ID: "eat_ortho_q4", TextDE: "Fühlst du Schuld- oder Schamgefühle nach Essanfällen oder kompensatorischem Verhalten?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "sexuality",
		LabelDE:           "Themen zur Sexualität",
		MappedSpecialties: []string{"couples"},
		Subcategories: []Subcategory{
			{
				ID:               "libido",
				LabelDE:          "Sexuelle Funktion (Libido)",
				ParentCategoryID: "sexuality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "sex_lib_q1", TextDE: "Hast du in letzter Zeit ein deutlich vermindertes oder gesteigertes sexuelles Verlangen erlebt?", Order: 1},
					{ID: "sex_lib_q2", TextDE: "Erlebst du dein sexuelles Verlangen als problematisch oder belastend?", Order: 2},
					{ID: "sex_lib_q3", TextDE: "Erlebst du Angst, Stress oder Leistungsdruck in sexuellen Situationen?", Order: 3},
					{ID: "sex_lib_q4", TextDE: "Führt Sexualität in deinen Beziehungen häufiger zu Konflikten oder Rückzug?", Order: 4},
				},
			},
			{
				ID:               "arousal",
				LabelDE:          "Sexuelles Verlangen (Erregung)",
				ParentCategoryID: "sexuality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "sex_arousal_q1", TextDE: "Hast du Schwierigkeiten, sexuelle Erregung zu empfinden oder bist überregt?", Order: 1},
					{ID: "sex_arousal_q2", TextDE: "Vermeidest du sexuelle Situationen aufgrund fehlenden Verlangens?", Order: 2},
					{ID: "sex_arousal_q3", TextDE: "Bleibt die körperliche Erregung aus, obwohl du dir Nähe oder Sexualität wünschst?", Order: 3},
					{ID: "sex_arousal_q4", TextDE: "Führt dein geringes Verlangen oder deine Erregungsprobleme zu Konflikten oder Rückzug?", Order: 4},
				},
			},
			{
				ID:               "orgasm",
				LabelDE:          "Orgasmus",
				ParentCategoryID: "sexuality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "sex_org_q1", TextDE: "Hast du Schwierigkeiten, einen Orgasmus zu erreichen oder erlebst du ihn deutlich verzögert?", Order: 1},
					{ID: "sex_org_q2", TextDE: "Erlebst du deine Orgasmusfähigkeit als belastend oder frustrierend?", Order: 2},
					{ID: "sex_org_q3", TextDE: "Erlebst du Leistungsdruck oder Angst in Bezug auf den Orgasmus?", Order: 3},
					{ID: "sex_org_q4", TextDE: "Nimmst du Medikamente oder Nahrungsergänzungsmittel ein, die deine Orgasmusfähigkeit beeinflussen könnten?", Order: 4},
				},
			},
			{
				ID:               "pain_sex",
				LabelDE:          "Schmerzen bei Sex",
				ParentCategoryID: "sexuality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "sex_pain_q1", TextDE: "Erlebst du Schmerzen während sexueller Aktivität?", Order: 1},
					{ID: "sex_pain_q2", TextDE: "Erlebst du Schmerzen auch nach dem Sex?", Order: 2},
					{ID: "sex_pain_q3", TextDE: "Treten die Schmerzen regelmäßig bei sexueller Aktivität auf?", Order: 3},
					{ID: "sex_pain_q4", TextDE: "Vermeidest du sexuelle Aktivitäten aus Angst vor Schmerzen?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "school_learning",
		LabelDE:           "Schule und Lernen",
		MappedSpecialties: []string{"children"},
		Subcategories: []Subcategory{
			{
				ID:               "emotional_school",
				LabelDE:          "Emotionale Schwierigkeiten (Ängste, Niedergeschlagenheit etc.)",
				ParentCategoryID: "school_learning",
				SymptomQuestions: []SymptomQuestion{
					{ID: "school_emo_q1", TextDE: "Hast du Angst oder bist Niedergeschlagen vor der Schule oder dem Schulbesuch?", Order: 1},
					{ID: "school_emo_q2", TextDE: "Hast du Angst vor Klassenarbeiten, Tests oder Prüfungen?", Order: 2},
					{ID: "school_emo_q3", TextDE: "Hast du Angst, den Lernstoff nicht zu verstehen oder Angst dass er dich überfordert?", Order: 3},
					{ID: "school_emo_q4", TextDE: "Fühlst du dich wegen Schule oder Lernen häufig traurig oder niedergeschlagen?", Order: 4},
				},
			},
			{
				ID:               "learning_difficulties",
				LabelDE:          "Lernschwierigkeiten",
				ParentCategoryID: "school_learning",
				SymptomQuestions: []SymptomQuestion{
					{ID: "school_learn_q1", TextDE: "Verstehst du Anweisungen oder Erklärungen in der Schule oft nicht?", Order: 1},
					{ID: "school_learn_q2", TextDE: "Hast du Probleme, dir Gelerntes zu merken?", Order: 2},
					{ID: "school_learn_q3", TextDE: "Kannst du dich beim Lernen leicht ablenken lassen?", Order: 3},
					{ID: "school_learn_q4", TextDE: "Denkst du oft, dass du weniger begabt bist als andere?", Order: 4},
				},
			},
			{
				ID:               "social_bullying",
				LabelDE:          "Soziale Schwierigkeiten (Mobbing)",
				ParentCategoryID: "school_learning",
				SymptomQuestions: []SymptomQuestion{
					{ID: "school_bully_q1", TextDE: "Wirst du in der Schule gehänselt oder verspottet?", Order: 1},
					{ID: "school_bully_q2", TextDE: "Wirst du absichtlich von Mitschüler*innen ausgeschlossen oder wirst körperlich/emotional angegriffen oder bedroht?", Order: 2},
					{ID: "school_bully_q3", TextDE: "Hast du Angst vor bestimmten Mitschüler*innen oder Gruppen?", Order: 3},
					{ID: "school_bully_q4", TextDE: "Vermeidest du bestimmte Pausen, Orte oder Gruppen wegen Konflikten?", Order: 4},
				},
			},
			{
				ID:               "family_school_conflict",
				LabelDE:          "Konflikte mit Familie und Eltern",
				ParentCategoryID: "school_learning",
				SymptomQuestions: []SymptomQuestion{
					{ID: "school_fam_q1", TextDE: "Hast du häufig Streit mit deinen Eltern wegen der Schule oder Hausaufgaben oder fühlst du dich unter Druck deswegen?", Order: 1},
					{ID: "school_fam_q2", TextDE: "Fühlst du dich traurig oder niedergeschlagen wegen Konflikten mit deinen Eltern in der Schule?", Order: 2},
					{ID: "school_fam_q3", TextDE: "Machen dir Konflikte mit deinen Eltern vor oder nach der Schule Stress oder innere Unruhe?", Order: 3},
					{ID: "school_fam_q4", TextDE: "Machen dich Konflikte mit Eltern über die Schule traurig oder mutlos?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "aggression_violence",
		LabelDE:           "Aggressivität und Gewalt",
		MappedSpecialties: []string{"trauma"},
		Subcategories: []Subcategory{
			{
				ID:               "physical_violence",
				LabelDE:          "Körperliche, sexuelle Gewalt",
				ParentCategoryID: "aggression_violence",
				SymptomQuestions: []SymptomQuestion{
					{ID: "viol_phys_q1", TextDE: "Hast du Angst vor körperlicher Gewalt durch andere Personen oder fühlst du dich bedroht oder unsicher?", Order: 1},
					{ID: "viol_phys_q2", TextDE: "Erlebst du körperliche Gewalt regelmäßig oder wiederholt?", Order: 2},
					{ID: "viol_phys_q3", TextDE: "Hast du sexuelle Kontakte erlebt, die du nicht wolltest?", Order: 3},
					{ID: "viol_phys_q4", TextDE: "Meidest du Menschen oder Situationen aus Angst vor Gewalt?", Order: 4},
				},
			},
			{
				ID:               "emotional_violence",
				LabelDE:          "Emotionale, Psychische Gewalt",
				ParentCategoryID: "aggression_violence",
				SymptomQuestions: []SymptomQuestion{
					{ID: "viol_emo_q1", TextDE: "Wirst du von anderen absichtlich beleidigt, beschimpft, herabgesetzt, bedroht oder eingeschüchtert?", Order: 1},
					{ID: "viol_emo_q2", TextDE: "Hast du das Gefühl, dass andere dich absichtlich ignorieren oder ausschließen?", Order: 2},
					{ID: "viol_emo_q3", TextDE: "Fühlst du dich durch psychische Gewalt häufig gestresst oder angespannt?", Order: 3},
					{ID: "viol_emo_q4", TextDE: "Meidest du Menschen oder Situationen aus Angst vor psychischer Gewalt?", Order: 4},
				},
			},
			{
				ID:               "cyber_violence",
				LabelDE:          "Gewalt in der digitalen Welt (Cyber-Gewalt)",
				ParentCategoryID: "aggression_violence",
				SymptomQuestions: []SymptomQuestion{
					{ID: "viol_cyber_q1", TextDE: "Wurdest du online beleidigt, beschimpft, verspottet, bedroht oder erniedrigt?", Order: 1},
					{ID: "viol_cyber_q2", TextDE: "Wurden private Fotos oder Informationen ohne dein Einverständnis geteilt?", Order: 2},
					{ID: "viol_cyber_q3", TextDE: "Hast du Cyber-Gewalt über soziale Medien, Chat-Apps oder Foren erlebt?", Order: 3},
					{ID: "viol_cyber_q4", TextDE: "Fühlst du dich gestresst, isoliert oder ausgeschlossen aufgrund von Online-Konflikten?", Order: 4},
				},
			},
			{
				ID:               "self_harm",
				LabelDE:          "Selbstzugefügte Gewalt",
				ParentCategoryID: "aggression_violence",
				SymptomQuestions: []SymptomQuestion{
					{ID: "viol_self_q1", TextDE: "Hast du dir selbst absichtlich körperlichen Schaden zugefügt bzw. dich einmal selbst verletzt (z.B. Schneiden, Schlagen, Verbrennen etc.)?", Order: 1},
					{ID: "viol_self_q2", TextDE: "Zeigst du selbstschädigendes Verhalten ohne direkte Verletzung (z.B. extremes Hungern, Schlafentzug)?", Order: 2},
					{ID: "viol_self_q3", TextDE: "Tritt selbstzugefügte Gewalt bei starken Gefühlen wie Wut, Traurigkeit oder Leere auf bzw. verletzt du dich um innere Anspannung zu reduzieren?", Order: 3},
					{ID: "viol_self_q4", TextDE: "Hast du selbstabwertende Gedanken über dich bzw. denkst du dass du Strafe oder Schmerz verdient hast?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "chronic_illness",
		LabelDE:           "Chronische Erkrankungen & chronische Schmerzen",
		MappedSpecialties: []string{"psychosomatic"},
		Subcategories: []Subcategory{
			{
				ID:               "organic_chronic",
				LabelDE:          "Organisch bedingte chronische Erkrankungen",
				ParentCategoryID: "chronic_illness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "chron_org_q1", TextDE: "Wurde bei dir eine chronische Erkrankung diagnostiziert?", Order: 1},
					{ID: "chron_org_q2", TextDE: "Hast du das Gefühl, dass deine Erkrankung deine Lebensqualität mindert?", Order: 2},
					{ID: "chron_org_q3", TextDE: "Hast du regelmäßig körperliche Beschwerden durch die Erkrankung?", Order: 3},
					{ID: "chron_org_q4", TextDE: "Fühlst du dich aufgrund der Erkrankung oft traurig, niedergeschlagen oder ängstlich?", Order: 4},
				},
			},
			{
				ID:               "chronic_pain",
				LabelDE:          "Chronische Schmerzen",
				ParentCategoryID: "chronic_illness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "chron_pain_q1", TextDE: "Sind die Schmerzen häufig oder dauerhaft vorhanden und schon länger als 3 Monate vorhanden?", Order: 1},
					{ID: "chron_pain_q2", TextDE: "Treten die Schmerzen unabhängig von körperlicher Belastung auf?", Order: 2},
					{ID: "chron_pain_q3", TextDE: "Fühlst du dich wegen der Schmerzen oft traurig, niedergeschlagen oder ängstlich?", Order: 3},
					{ID: "chron_pain_q4", TextDE: "Beeinträchtigen die Schmerzen deine Fähigkeit, alltägliche Aufgaben zu erledigen?", Order: 4},
				},
			},
			{
				ID:               "autoimmune",
				LabelDE:          "Autoimmunerkrankungen",
				ParentCategoryID: "chronic_illness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "chron_auto_q1", TextDE: "Fühlst du dich durch die Erkrankung im Alltag eingeschränkt?", Order: 1},
					{ID: "chron_auto_q2", TextDE: "Hast du das Gefühl, dass die Erkrankung deine Lebensqualität beeinträchtigt?", Order: 2},
					{ID: "chron_auto_q3", TextDE: "Hast du regelmäßig körperliche Beschwerden fühlst dich müde oder erschöpft durch die Autoimmunerkrankung?", Order: 3},
					{ID: "chron_auto_q4", TextDE: "Fühlst du dich wegen der Erkrankung oft traurig, niedergeschlagen oder ängstlich?", Order: 4},
				},
			},
			{
				ID:               "chronic_mental",
				LabelDE:          "Chronische psychische Erkrankungen",
				ParentCategoryID: "chronic_illness",
				SymptomQuestions: []SymptomQuestion{
					{ID: "chron_mental_q1", TextDE: "Wurde bei dir eine chronische psychische Erkrankung diagnostiziert die schon länger als 6 Monate besteht?", Order: 1},
					{ID: "chron_mental_q2", TextDE: "Hast du das Gefühl, dass die Erkrankung deinen Alltag beeinflusst?", Order: 2},
					{ID: "chron_mental_q3", TextDE: "Fühlst du dich oft traurig, niedergeschlagen oder ängstlich?", Order: 3},
					{ID: "chron_mental_q4", TextDE: "Beeinträchtigt die Erkrankung deine Beziehungen zu Familie oder Freund*innen?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "migration_culture",
		LabelDE:           "Migration und Kultur",
		MappedSpecialties: []string{"migration"},
		Subcategories: []Subcategory{
			{
				ID:               "migration_adaptation",
				LabelDE:          "Schwierigkeiten in der Migration (Anpassung, Kultur und Religion)",
				ParentCategoryID: "migration_culture",
				SymptomQuestions: []SymptomQuestion{
					{ID: "migr_adapt_q1", TextDE: "Fällt es dir schwer, dich an die neue Umgebung oder Kultur anzupassen?", Order: 1},
					{ID: "migr_adapt_q2", TextDE: "Fühlst du dich aufgrund kultureller Unterschiede oft missverstanden?", Order: 2},
					{ID: "migr_adapt_q3", TextDE: "Fühlst du dich in der neuen Umgebung oft unsicher oder fehl am Platz?", Order: 3},
					{ID: "migr_adapt_q4", TextDE: "Hast du das Gefühl, dass dein Alltag durch die Migration belastender geworden ist?", Order: 4},
				},
			},
			{
				ID:               "cultural_identity",
				LabelDE:          "Kulturelle identitätsbezogene Schwierigkeiten (Entfremdung, Identität)",
				ParentCategoryID: "migration_culture",
				SymptomQuestions: []SymptomQuestion{
					{ID: "migr_ident_q1", TextDE: "Hast du das Gefühl, dass du weder zur Herkunftskultur noch zur neuen Kultur vollständig gehörst?", Order: 1},
					{ID: "migr_ident_q2", TextDE: "Erlebst du Konflikte zwischen kulturellen Werten oder Normen verschiedener Lebensbereiche?", Order: 2},
					{ID: "migr_ident_q3", TextDE: "Fühlst du dich \"hin- und hergerissen\" zwischen zwei oder mehr Kulturen?", Order: 3},
					{ID: "migr_ident_q4", TextDE: "Hast du das Gefühl, nicht vollständig in der Gesellschaft oder Gemeinschaft akzeptiert zu sein und fühlst dich isoliert?", Order: 4},
				},
			},
			{
				ID:               "family_culture",
				LabelDE:          "Familiäre Schwierigkeiten in Bezug auf Kultur (Trennung von Familie, Konflikte bei der Integration)",
				ParentCategoryID: "migration_culture",
				SymptomQuestions: []SymptomQuestion{
					{ID: "migr_fam_q1", TextDE: "Lebst du derzeit getrennt von deiner Familie aufgrund von Migration oder Umzug und das belastet dich stark?", Order: 1},
					{ID: "migr_fam_q2", TextDE: "Fühlst du dich einsam oder isoliert durch die Trennung von deiner Familie und das macht dir Sorgen?", Order: 2},
					{ID: "migr_fam_q3", TextDE: "Erlebst du Spannungen zwischen deinen eigenen Anpassungsbemühungen und den Erwartungen der Familie?", Order: 3},
					{ID: "migr_fam_q4", TextDE: "Gibt es Konflikte in deiner Familie wegen unterschiedlicher kultureller Werte oder Traditionen?", Order: 4},
				},
			},
			{
				ID:               "social_intercultural",
				LabelDE:          "Soziale, interkulturelle Probleme (Sprache, Schule, Sexualität etc.)",
				ParentCategoryID: "migration_culture",
				SymptomQuestions: []SymptomQuestion{
					{ID: "migr_social_q1", TextDE: "Fällt es dir schwer, die Sprache des neuen Landes zu verstehen oder zu sprechen und das macht dir Sorgen?", Order: 1},
					{ID: "migr_social_q2", TextDE: "Hast du Schwierigkeiten, den schulischen oder beruflichen Anforderungen im neuen Land zu folgen?", Order: 2},
					{ID: "migr_social_q3", TextDE: "Fühlst du dich im Unterricht oder bei der Arbeit unsicher wegen kultureller Unterschiede?", Order: 3},
					{ID: "migr_social_q4", TextDE: "Fällt es dir schwer, Freundschaften oder soziale Kontakte im neuen Land aufzubauen?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "bullying_discrimination",
		LabelDE:           "Mobbing und Diskriminierung",
		MappedSpecialties: []string{"trauma", "identity"},
		Subcategories: []Subcategory{
			{
				ID:               "mobbing_work_school",
				LabelDE:          "Mobbing in Schule oder Arbeit",
				ParentCategoryID: "bullying_discrimination",
				SymptomQuestions: []SymptomQuestion{
					{ID: "mob_work_q1", TextDE: "Fühlst du dich durch das Verhalten von Schul- oder ArbeitskollegInnen oft gestresst oder angespannt?", Order: 1},
					{ID: "mob_work_q2", TextDE: "Fühlst du dich traurig oder niedergeschlagen wegen Mobbing innerhalb der Schule oder Arbeit?", Order: 2},
					{ID: "mob_work_q3", TextDE: "Fühlst du dich hilflos oder ohnmächtig bei Konflikten in der Arbeit oder Schule?", Order: 3},
					{ID: "mob_work_q4", TextDE: "Vermeidest du bestimmte Treffen oder Sitzungen, um Mobbing zu umgehen?", Order: 4},
				},
			},
			{
				ID:               "mobbing_family",
				LabelDE:          "Mobbing in der Familie oder Freunden",
				ParentCategoryID: "bullying_discrimination",
				SymptomQuestions: []SymptomQuestion{
					{ID: "mob_fam_q1", TextDE: "Fühlst du dich durch das Verhalten von Familienmitgliedern oft gestresst oder angespannt?", Order: 1},
					{ID: "mob_fam_q2", TextDE: "Fühlst du dich traurig oder niedergeschlagen wegen Mobbing innerhalb der Familie?", Order: 2},
					{ID: "mob_fam_q3", TextDE: "Fühlst du dich hilflos oder ohnmächtig in familiären Konflikten?", Order: 3},
					{ID: "mob_fam_q4", TextDE: "Vermeidest du bestimmte Familienangelegenheiten oder Treffen, um Mobbing zu umgehen?", Order: 4},
				},
			},
			{
				ID:               "discrimination_personal",
				LabelDE:          "Diskriminierung aufgrund Alter, Geschlecht, ethnischer Herkunft etc.",
				ParentCategoryID: "bullying_discrimination",
				SymptomQuestions: []SymptomQuestion{
					{ID: "discr_pers_q1", TextDE: "Fühlst du dich durch subtile oder versteckte Diskriminierung gestresst oder angespannt?", Order: 1},
					{ID: "discr_pers_q2", TextDE: "Fühlst du dich niedergeschlagen oder traurig, weil du diskriminiert wurdest?", Order: 2},
					{ID: "discr_pers_q3", TextDE: "Fühlst du dich hilflos oder ohnmächtig, wenn du Diskriminierung erfährst?", Order: 3},
					{ID: "discr_pers_q4", TextDE: "Vermeidest du bestimmte Situationen oder Orte, um Diskriminierung zu umgehen?", Order: 4},
				},
			},
			{
				ID:               "discrimination_structural",
				LabelDE:          "Diskriminierung aufgrund von Bildung, Institutionen etc.",
				ParentCategoryID: "bullying_discrimination",
				SymptomQuestions: []SymptomQuestion{
					{ID: "discr_struct_q1", TextDE: "Fühlst du dich durch indirekte oder strukturelle Diskriminierung gestresst oder angespannt?", Order: 1},
					{ID: "discr_struct_q2", TextDE: "Fühlst du dich hilflos oder ohnmächtig gegenüber struktureller Benachteiligung?", Order: 2},
					{ID: "discr_struct_q3", TextDE: "Machst du dir Sorgen, dass indirekte Diskriminierung deine Chancen oder Möglichkeiten einschränkt?", Order: 3},
					{ID: "discr_struct_q4", TextDE: "Hast du Schwierigkeiten, über Benachteiligung oder Ungerechtigkeit zu sprechen oder dich zu wehren?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "gender_sexuality",
		LabelDE:           "Genderidentität & Sexuelle Orientierung",
		MappedSpecialties: []string{"lgbtq", "identity"},
		Subcategories: []Subcategory{
			{
				ID:               "sexual_orientation",
				LabelDE:          "Sexuelle Orientierung (Hetero, Homo, Bi, Pan etc.)",
				ParentCategoryID: "gender_sexuality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "gender_orient_q1", TextDE: "Fühlst du inneren Stress oder Unsicherheit wegen deiner sexuellen Orientierung?", Order: 1},
					{ID: "gender_orient_q2", TextDE: "Hast du Schwierigkeiten, deine sexuelle Orientierung zu akzeptieren?", Order: 2},
					{ID: "gender_orient_q3", TextDE: "Erlebst du Gefühle von Schuld oder Scham in Bezug auf deine sexuelle Orientierung?", Order: 3},
					{ID: "gender_orient_q4", TextDE: "Hast du Schwierigkeiten, über deine sexuelle Orientierung mit Familie oder Freunden zu sprechen?", Order: 4},
				},
			},
			{
				ID:               "gender_identity",
				LabelDE:          "Gender Identität (Cis, Trans, Non-Binary etc.)",
				ParentCategoryID: "gender_sexuality",
				SymptomQuestions: []SymptomQuestion{
					{ID: "gender_ident_q1", TextDE: "Fühlst du inneren Stress oder Unwohlsein wegen deiner Genderidentität?", Order: 1},
					{ID: "gender_ident_q2", TextDE: "Hast du das Gefühl, dass deine Genderidentität im Widerspruch zu gesellschaftlichen Erwartungen steht?", Order: 2},
					{ID: "gender_ident_q3", TextDE: "Fühlst du dich traurig oder niedergeschlagen wegen deiner Genderidentität?", Order: 3},
					{ID: "gender_ident_q4", TextDE: "Hast du Angst, dass andere deine Genderidentität nicht akzeptieren oder anerkennen?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "fertility_pregnancy",
		LabelDE:           "Kinderwunsch, Schwangerschaft, Geburt",
		MappedSpecialties: []string{"family"},
		Subcategories: []Subcategory{
			{
				ID:               "fertility",
				LabelDE:          "Kinderwunsch",
				ParentCategoryID: "fertility_pregnancy",
				SymptomQuestions: []SymptomQuestion{
					{ID: "fert_wish_q1", TextDE: "Fühlst du dich traurig oder niedergeschlagen, wenn es mit dem Kinderwunsch nicht klappt?", Order: 1},
					{ID: "fert_wish_q2", TextDE: "Fühlst du dich durch den Kinderwunsch im Alltag gestresst?", Order: 2},
					{ID: "fert_wish_q3", TextDE: "Gibt es Konflikte mit deinem Partner aufgrund des Kinderwunsches?", Order: 3},
					{ID: "fert_wish_q4", TextDE: "Hast du manchmal das Gefühl von Schuld oder Versagen wegen des Kinderwunsches?", Order: 4},
				},
			},
			{
				ID:               "pregnancy",
				LabelDE:          "Schwangerschaft",
				ParentCategoryID: "fertility_pregnancy",
				SymptomQuestions: []SymptomQuestion{
					{ID: "fert_preg_q1", TextDE: "Fühlst du dich oft traurig, niedergeschlagen oder hast starke Stimmungsschwankungen während der Schwangerschaft?", Order: 1},
					{ID: "fert_preg_q2", TextDE: "Fühlst du dich überfordert von den Veränderungen in deinem Körper oder Alltag?", Order: 2},
					{ID: "fert_preg_q3", TextDE: "Machen dir Gedanken über die Geburt oder die Zukunft als Elternteil Stress?", Order: 3},
					{ID: "fert_preg_q4", TextDE: "Sorgst du dich über Komplikationen bei Geburt oder über die Gesundheit deines Babys?", Order: 4},
				},
			},
			{
				ID:               "birth",
				LabelDE:          "Geburt",
				ParentCategoryID: "fertility_pregnancy",
				SymptomQuestions: []SymptomQuestion{
					{ID: "fert_birth_q1", TextDE: "Hast du Angst vor Schmerzen oder Komplikationen während der Geburt?", Order: 1},
					{ID: "fert_birth_q2", TextDE: "Hast du Angst, die Kontrolle zu verlieren oder dass etwas schiefgeht?", Order: 2},
					{ID: "fert_birth_q3", TextDE: "Machst du dir Sorgen, wie du mit der Geburtssituation umgehen wirst?", Order: 3},
					{ID: "fert_birth_q4", TextDE: "Hast du wiederkehrende Gedanken oder Grübeleien über die Geburt und machen dich diese nervös?", Order: 4},
				},
			},
			{
				ID:               "postnatal_depression",
				LabelDE:          "Postnatale Depression",
				ParentCategoryID: "fertility_pregnancy",
				SymptomQuestions: []SymptomQuestion{
					{ID: "fert_postnatal_q1", TextDE: "Fühlst du dich seit der Geburt oft traurig oder niedergeschlagen?", Order: 1},
					{ID: "fert_postnatal_q2", TextDE: "Fühlst du dich überwältigt, gestresst oder hilflos im Umgang mit deinem Baby?", Order: 2},
					{ID: "fert_postnatal_q3", TextDE: "Hast du Angst, als Elternteil nicht gut genug zu sein?", Order: 3},
					{ID: "fert_postnatal_q4", TextDE: "Belastet die Geburt oder die Elternrolle eure Partnerschaft?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "attention",
		LabelDE:           "Aufmerksamkeitsthemen",
		MappedSpecialties: []string{"adhd"},
		Subcategories: []Subcategory{
			{
				ID:               "add",
				LabelDE:          "ADS",
				ParentCategoryID: "attention",
				SymptomQuestions: []SymptomQuestion{
					{ID: "att_add_q1", TextDE: "Hast du Schwierigkeiten, bei Aufgaben oder Gesprächen aufmerksam zu bleiben?", Order: 1},
					{ID: "att_add_q2", TextDE: "Vergisst du häufig Termine, Aufgaben oder Gegenstände?", Order: 2},
					{ID: "att_add_q3", TextDE: "Fällt es dir schwer, Aufgaben zu planen oder zu organisieren?", Order: 3},
					{ID: "att_add_q4", TextDE: "Hast du Probleme, Ordnung in Haushalt, Arbeit oder Studium zu halten?", Order: 4},
				},
			},
			{
				ID:               "adhd",
				LabelDE:          "ADHS",
				ParentCategoryID: "attention",
				SymptomQuestions: []SymptomQuestion{
					{ID: "att_adhd_q1", TextDE: "Hast du Schwierigkeiten, dich über längere Zeit auf Aufgaben zu konzentrieren?", Order: 1},
					{ID: "att_adhd_q2", TextDE: "Fühlst du dich häufig innerlich unruhig oder getrieben?", Order: 2},
					{ID: "att_adhd_q3", TextDE: "Hast du Schwierigkeiten, längere Zeit still zu sitzen?", Order: 3},
					{ID: "att_adhd_q4", TextDE: "Triffst du häufig schnelle Entscheidungen, ohne die Folgen abzuschätzen?", Order: 4},
				},
			},
			{
				ID:               "adult_adhd",
				LabelDE:          "Adultes",
				ParentCategoryID: "attention",
				SymptomQuestions: []SymptomQuestion{
					{ID: "att_adult_q1", TextDE: "Fällt es dir schwer, bei der Arbeit oder bei Projekten über längere Zeit konzentriert zu bleiben?", Order: 1},
					{ID: "att_adult_q2", TextDE: "Fühlst du dich innerlich häufig unruhig oder getrieben?", Order: 2},
					{ID: "att_adult_q3", TextDE: "Fällt es dir schwer, Impulse im Alltag zu bremsen (z.B. beim Einkaufen, Autofahren oder Arbeiten)?", Order: 3},
					{ID: "att_adult_q4", TextDE: "Hast du Probleme, Ordnung in Wohnung, Arbeit oder Finanzen zu halten?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "autism_spectrum",
		LabelDE:           "Autismus Spektrum",
		MappedSpecialties: []string{"autism"},
		Subcategories: []Subcategory{
			{
				ID:               "early_childhood_autism",
				LabelDE:          "Frühkindlicher Autismus (Kanner-Autismus)",
				ParentCategoryID: "autism_spectrum",
				SymptomQuestions: []SymptomQuestion{
					{ID: "aut_kanner_q1", TextDE: "Hat dein Kind Schwierigkeiten, Blickkontakt herzustellen oder aufrechtzuerhalten?", Order: 1},
					{ID: "aut_kanner_q2", TextDE: "Zeigt dein Kind selten Freude oder emotionale Reaktionen anderen gegenüber?", Order: 2},
					{ID: "aut_kanner_q3", TextDE: "Spricht dein Kind deutlich verspätet oder gar nicht?", Order: 3},
					{ID: "aut_kanner_q4", TextDE: "Besteht dein Kind auf festen Routinen oder Ritualen und reagiert stark auf Veränderungen?", Order: 4},
				},
			},
			{
				ID:               "asperger",
				LabelDE:          "Asperger-Syndrom",
				ParentCategoryID: "autism_spectrum",
				SymptomQuestions: []SymptomQuestion{
					{ID: "aut_asp_q1", TextDE: "Fällt es dir schwer, Blickkontakt zu halten oder Körpersprache anderer zu lesen?", Order: 1},
					{ID: "aut_asp_q2", TextDE: "Fällt es dir schwer, Freundschaften zu knüpfen oder aufrechtzuerhalten oder fühlst du dich in Gruppen oft unsicher?", Order: 2},
					{ID: "aut_asp_q3", TextDE: "Sprichst du sehr direkt oder wortwörtlich, ohne versteckte Bedeutungen zu erkennen oder hast du Probleme bei Small-Talk?", Order: 3},
					{ID: "aut_asp_q4", TextDE: "Hast du sehr intensive Interessen oder Spezialgebiete, in denen du dich stark vertiefst?", Order: 4},
				},
			},
			{
				ID:               "atypical_autism",
				LabelDE:          "Atypischer Autismus / PDD-NOS",
				ParentCategoryID: "autism_spectrum",
				SymptomQuestions: []SymptomQuestion{
					{ID: "aut_atyp_q1", TextDE: "Hast du manchmal Probleme, soziale Signale wie Mimik oder Gestik richtig zu deuten?", Order: 1},
					{ID: "aut_atyp_q2", TextDE: "Nutzt du selten Gestik oder Mimik zur Unterstützung deiner Kommunikation?", Order: 2},
					{ID: "aut_atyp_q3", TextDE: "Reagierst du manchmal gestresst auf Veränderungen in Abläufen oder Plänen?", Order: 3},
					{ID: "aut_atyp_q4", TextDE: "Bist du empfindlich gegenüber Geräuschen, Licht, Berührungen oder Gerüchen?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "tic_disorders",
		LabelDE:           "Tic-Störungen",
		MappedSpecialties: []string{"children", "adhd"},
		Subcategories: []Subcategory{
			{
				ID:               "transient_tics",
				LabelDE:          "Vorübergehende Tic-Störung",
				ParentCategoryID: "tic_disorders",
				SymptomQuestions: []SymptomQuestion{
					{ID: "tic_trans_q1", TextDE: "Bestehen die Tics seit weniger als 12 Monaten und treten zeitweilig oder in Schüben auf?", Order: 1},
					{ID: "tic_trans_q2", TextDE: "Hast du plötzliche, schnelle Bewegungen wie Blinzeln, Grimassieren oder Schulterzucken bemerkt?", Order: 2},
					{ID: "tic_trans_q3", TextDE: "Treten die Tics besonders unter Stress, Aufregung oder Müdigkeit auf?", Order: 3},
					{ID: "tic_trans_q4", TextDE: "Beeinträchtigen die Tics deine Aktivitäten oder sozialen Kontakte nur geringfügig?", Order: 4},
				},
			},
			{
				ID:               "chronic_tics",
				LabelDE:          "Chronische motorische oder vokale Tic-Störung",
				ParentCategoryID: "tic_disorders",
				SymptomQuestions: []SymptomQuestion{
					{ID: "tic_chron_q1", TextDE: "Hattest du eine Phase von mindestens 12 Monaten mit kontinuierlichen Tics und treten die Tics in Schüben auf?", Order: 1},
					{ID: "tic_chron_q2", TextDE: "Hast du wiederholte, unwillkürliche Bewegungen (motorische Tics), wie Blinzeln, Grimassieren oder Schulterzucken?", Order: 2},
					{ID: "tic_chron_q3", TextDE: "Machst du unwillkürliche Geräusche oder Laute (vokale Tics), wie Räuspern, Schnaufen oder kurze Laute?", Order: 3},
					{ID: "tic_chron_q4", TextDE: "Hast du nur motorische oder nur vokale Tics, aber nicht beides gleichzeitig?", Order: 4},
				},
			},
			{
				ID:               "tourette",
				LabelDE:          "Tourette-Syndrom",
				ParentCategoryID: "tic_disorders",
				SymptomQuestions: []SymptomQuestion{
					{ID: "tic_tour_q1", TextDE: "Hast du sowohl motorische als auch vokale Tics, die seit mindestens einem Jahr bestehen?", Order: 1},
					{ID: "tic_tour_q2", TextDE: "Wechseln Art, Häufigkeit oder Intensität deiner Tics im Laufe der Zeit?", Order: 2},
					{ID: "tic_tour_q3", TextDE: "Beeinträchtigen die Tics deinen Alltag, deine Arbeit oder sozialen Kontakte erheblich?", Order: 3},
					{ID: "tic_tour_q4", TextDE: "Hast du Schwierigkeiten, die Tics in bestimmten Situationen zu unterdrücken?", Order: 4},
				},
			},
		},
	},
	{
		ID:                "crisis",
		LabelDE:           "Suizid, akute Selbstverletzung, Fremdgefährdung",
		IsCrisis:          true,
		MappedSpecialties: []string{},
		Subcategories:     []Subcategory{},
	},
}

// CategoryByID returns the category with the given id, or nil.
func CategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// SubcategoryByID searches all categories for the subcategory, or returns nil.
func SubcategoryByID(id string) *Subcategory {
	for i := range Categories {
		for j := range Categories[i].Subcategories {
			if Categories[i].Subcategories[j].ID == id {
				return &Categories[i].Subcategories[j]
			}
		}
	}
	return nil
}

// SubcategoriesForCategory returns the subcategories of a category, empty for
// unknown ids.
func SubcategoriesForCategory(categoryID string) []Subcategory {
	if cat := CategoryByID(categoryID); cat != nil {
		return cat.Subcategories
	}
	return nil
}

// IsCrisisCategory reports whether the id names the crisis category.
func IsCrisisCategory(categoryID string) bool {
	cat := CategoryByID(categoryID)
	return cat != nil && cat.IsCrisis
}

// SymptomQuestionsFor returns the questions of a subcategory, empty for
// unknown ids.
func SymptomQuestionsFor(subcategoryID string) []SymptomQuestion {
	if sub := SubcategoryByID(subcategoryID); sub != nil {
		return sub.SymptomQuestions
	}
	return nil
}

// SpecialtiesForCategory returns the specialty slugs a category maps to.
func SpecialtiesForCategory(categoryID string) []string {
	if cat := CategoryByID(categoryID); cat != nil {
		return cat.MappedSpecialties
	}
	return nil
}

// NonCrisisCategories returns every category except the crisis entry.
func NonCrisisCategories() []Category {
	out := make([]Category, 0, len(Categories))
	for _, cat := range Categories {
		if !cat.IsCrisis {
			out = append(out, cat)
		}
	}
	return out
}

// CrisisCategory returns the crisis entry, or nil if the taxonomy has none.
func CrisisCategory() *Category {
	for i := range Categories {
		if Categories[i].IsCrisis {
			return &Categories[i]
		}
	}
	return nil
}

// CategoryLabel returns the German label for a category id, falling back to
// the id itself.
func CategoryLabel(categoryID string) string {
	if cat := CategoryByID(categoryID); cat != nil {
		return cat.LabelDE
	}
	return categoryID
}

// SubcategoryLabel returns the German label for a subcategory id, falling
// back to the id itself.
func SubcategoryLabel(subcategoryID string) string {
	if sub := SubcategoryByID(subcategoryID); sub != nil {
		return sub.LabelDE
	}
	return subcategoryID
}

// SymptomAnswers holds the Likert answers (0-3) of the adaptive symptom
// check. Q2 and Q3 stay nil in short mode.
type SymptomAnswers struct {
	Q1 *int `json:"q1"`
	Q2 *int `json:"q2,omitempty"`
	Q3 *int `json:"q3,omitempty"`
	Q4 *int `json:"q4"`
}

// SeverityScore sums the answered questions into a 0-12 severity value.
// Unanswered questions contribute nothing.
func SeverityScore(a SymptomAnswers) int {
	score := 0
	for _, v := range []*int{a.Q1, a.Q2, a.Q3, a.Q4} {
		if v != nil {
			score += *v
		}
	}
	return score
}

// ShouldShowFullQuestions decides the adaptive question flow: an initial
// answer of 2 or more unlocks the follow-up questions Q2 and Q3.
func ShouldShowFullQuestions(q1 *int) bool {
	return q1 != nil && *q1 >= 2
}
