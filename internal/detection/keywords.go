package detection

// languageKeywords holds the German and English keyword variants for one
// detection target.
type languageKeywords struct {
	de []string
	en []string
}

func (k languageKeywords) forLanguage(lang string) []string {
	if lang == LangEN {
		return k.en
	}
	return k.de
}

// topicKeywords maps matching topic ids to the phrases that signal them.
var topicKeywords = map[string]languageKeywords{
	"depression": {
		de: []string{
			"traurig", "traurigkeit", "hoffnungslos", "hoffnungslosigkeit", "antriebslos", "antrieb",
			"müde", "erschöpft", "leer", "sinnlos", "depressiv", "depression", "niedergeschlagen",
			"freudlos", "dunkel", "schwer", "motivationslos", "interesse verloren", "nichts mehr",
			"aufstehen schwer", "morgens schwer", "weinen", "tränen", "melancholisch", "düster",
			"schwermut", "lebensfreude", "grau", "eintönig", "negativ", "pessimistisch", "wertlos",
			"nutzlos",
		},
		en: []string{
			"sad", "sadness", "hopeless", "hopelessness", "no energy", "tired", "exhausted", "empty",
			"meaningless", "depressed", "depression", "down", "joyless", "dark", "heavy", "no motivation",
			"lost interest", "nothing matters", "hard to get up", "crying", "tears", "melancholy",
			"gloomy", "lifeless", "gray", "monotonous", "negative", "pessimistic", "worthless", "useless",
		},
	},
	"anxiety": {
		de: []string{
			"angst", "ängste", "panik", "panikattacke", "sorgen", "nervös", "unruhig", "ängstlich",
			"phobie", "befürchtung", "besorgt", "anspannung", "verkrampft", "herzrasen", "atemnot",
			"schwindel", "schweißausbrüche", "zittern", "gedankenkreisen", "grübeln", "katastrophisieren",
			"worst case", "kontrollverlust", "überfordert", "hilflos", "ausweglos", "beklemmung",
			"engegefühl", "flucht", "vermeiden", "vermeidung", "soziale angst",
		},
		en: []string{
			"anxiety", "anxious", "panic", "panic attack", "worry", "worried", "nervous", "restless",
			"phobia", "fear", "fearful", "tense", "tension", "racing heart", "breathless", "dizzy",
			"sweating", "shaking", "trembling", "overthinking", "ruminating", "catastrophizing",
			"worst case", "losing control", "overwhelmed", "helpless", "hopeless", "suffocating",
			"tightness", "flee", "avoid", "avoidance", "social anxiety",
		},
	},
	"trauma": {
		de: []string{
			"trauma", "traumatisch", "ptbs", "flashback", "flashbacks", "missbrauch", "misshandlung",
			"gewalt", "unfall", "verlust", "tod", "trauer", "schock", "belastung", "albtraum", "albträume",
			"erinnerung", "erinnerungen", "übergriff", "vergewaltigung", "kindheit", "kindheitserfahrung",
			"vernachlässigung", "betäubt", "abgespalten", "dissoziation", "trigger", "ausgelöst",
			"wiedererlebend", "verarbeiten", "nicht vergessen", "verfolgt mich", "loslassen",
			"abschließen", "krieg", "flucht",
		},
		en: []string{
			"trauma", "traumatic", "ptsd", "flashback", "flashbacks", "abuse", "violence", "accident",
			"loss", "death", "grief", "shock", "burden", "nightmare", "nightmares", "memory", "memories",
			"assault", "rape", "childhood", "childhood experience", "neglect", "numb", "dissociation",
			"trigger", "triggered", "reliving", "process", "can't forget", "haunting", "haunts me",
			"let go", "closure", "war", "refugee",
		},
	},
	"relationships": {
		de: []string{
			"beziehung", "beziehungsprobleme", "partner", "partnerin", "partnerschaft", "ehe", "trennung",
			"scheidung", "konflikt", "konflikte", "kommunikation", "intimität", "vertrauen", "eifersucht",
			"fremdgehen", "betrug", "untreue", "liebe", "nähe", "distanz", "bindung", "bindungsangst",
			"dating", "single", "einsamkeit", "verlassen", "verlustangst", "streit", "streiten", "toxisch",
			"abhängig", "co-abhängig", "narzisst", "manipulation",
		},
		en: []string{
			"relationship", "relationship problems", "partner", "partnership", "marriage", "separation",
			"divorce", "conflict", "conflicts", "communication", "intimacy", "trust", "jealousy",
			"cheating", "betrayal", "infidelity", "love", "closeness", "distance", "attachment",
			"fear of commitment", "dating", "single", "lonely", "loneliness", "abandoned", "fear of loss",
			"argue", "arguing", "toxic", "dependent", "codependent", "narcissist", "manipulation",
		},
	},
	"family": {
		de: []string{
			"familie", "familiär", "eltern", "mutter", "vater", "kind", "kinder", "erziehung",
			"geschwister", "generation", "großeltern", "schwiegereltern", "familienkonflikt",
			"familienkrise", "patchwork", "stiefeltern", "adoption", "pflegekind", "erbschaft", "pflege",
			"angehörige", "familiengeheimnis", "erwartungen", "druck", "tradition", "rollen",
		},
		en: []string{
			"family", "parents", "mother", "father", "child", "children", "parenting", "sibling",
			"siblings", "generation", "grandparents", "in-laws", "family conflict", "family crisis",
			"blended family", "stepparent", "adoption", "foster", "inheritance", "caregiver", "caregiving",
			"family secret", "expectations", "pressure", "tradition", "roles",
		},
	},
	"burnout": {
		de: []string{
			"burnout", "burn-out", "ausgebrannt", "erschöpft", "erschöpfung", "überarbeitet", "stress",
			"überlastung", "work-life", "balance", "keine kraft", "am ende", "zusammenbruch",
			"zusammengebrochen", "funktionieren", "perfektionismus", "leistungsdruck", "dauerstress",
			"rastlos", "nicht abschalten", "erholung", "urlaub hilft nicht", "leer", "zynisch",
			"distanziert", "job", "arbeit", "karriere", "chef",
		},
		en: []string{
			"burnout", "burned out", "exhausted", "exhaustion", "overworked", "stress", "overload",
			"work-life", "balance", "no energy", "at my limit", "breakdown", "broke down", "functioning",
			"perfectionism", "pressure", "constant stress", "restless", "can't switch off", "recovery",
			"vacation doesn't help", "empty", "cynical", "detached", "job", "work", "career", "boss",
		},
	},
	"addiction": {
		de: []string{
			"sucht", "süchtig", "abhängig", "abhängigkeit", "alkohol", "trinken", "drogen", "konsum",
			"entzug", "spielsucht", "glücksspiel", "casino", "internet", "gaming", "pornografie",
			"kaufsucht", "medikamente", "rückfall", "clean", "nüchtern", "kontrollverlust", "verlangen",
			"craving", "dealer", "kiffen", "kokain", "tabletten", "betäuben",
		},
		en: []string{
			"addiction", "addicted", "dependent", "dependency", "alcohol", "drinking", "drugs",
			"substance", "withdrawal", "gambling", "casino", "internet", "gaming", "pornography",
			"shopping addiction", "medication", "relapse", "clean", "sober", "loss of control", "craving",
			"dealer", "weed", "cocaine", "pills", "numbing",
		},
	},
	"eating_disorders": {
		de: []string{
			"essstörung", "essen", "magersucht", "anorexie", "bulimie", "binge", "essanfall", "erbrechen",
			"gewicht", "körperbild", "dünn", "dick", "kalorien", "diät", "fasten", "hungern",
			"übergewicht", "adipositas", "purging", "kompensieren", "sport zwang", "waage", "spiegel",
			"körper", "hassen", "ekel", "kontrolle", "essen kontrollieren",
		},
		en: []string{
			"eating disorder", "eating", "anorexia", "bulimia", "binge", "binge eating", "purging",
			"vomiting", "weight", "body image", "thin", "fat", "calories", "diet", "fasting", "starving",
			"overweight", "obesity", "compensating", "compulsive exercise", "scale", "mirror", "body",
			"hate", "disgust", "control", "controlling food",
		},
	},
	"adhd": {
		de: []string{
			"adhd", "adhs", "ads", "konzentration", "konzentrationsprobleme", "aufmerksamkeit", "impulsiv",
			"impulsivität", "unaufmerksam", "fokus", "abgelenkt", "vergesslich", "chaotisch",
			"unorganisiert", "prokrastination", "aufschieben", "hyperaktiv", "unruhe", "innere unruhe",
			"gedankenrasen", "multitasking", "anfangen", "beenden", "durchhalten", "struktur",
		},
		en: []string{
			"adhd", "add", "concentration", "concentration problems", "attention", "impulsive",
			"impulsivity", "inattentive", "focus", "distracted", "forgetful", "chaotic", "disorganized",
			"procrastination", "procrastinating", "hyperactive", "restless", "inner restlessness",
			"racing thoughts", "multitasking", "starting", "finishing", "persistence", "structure",
		},
	},
	"self_care": {
		de: []string{
			"selbstwert", "selbstwertgefühl", "selbstbewusstsein", "selbstvertrauen", "grenzen",
			"grenzen setzen", "selbstfürsorge", "selbstliebe", "selbstakzeptanz", "minderwertig",
			"nicht gut genug", "perfektionist", "people pleaser", "nein sagen", "überfordert",
			"für andere da", "eigene bedürfnisse", "identität", "wer bin ich", "sinn", "lebenssinn",
			"veränderung", "neuorientierung", "lebenskrise", "midlife",
		},
		en: []string{
			"self-worth", "self-esteem", "self-confidence", "confidence", "boundaries",
			"setting boundaries", "self-care", "self-love", "self-acceptance", "inferior",
			"not good enough", "perfectionist", "people pleaser", "saying no", "overwhelmed",
			"always there for others", "own needs", "identity", "who am i", "meaning", "purpose", "change",
			"new direction", "life crisis", "midlife",
		},
	},
	"stress": {
		de: []string{
			"stress", "stressig", "druck", "prüfung", "prüfungsangst", "leistung", "leistungsdruck",
			"überforderung", "überlastet", "deadline", "zeitdruck", "studium", "schule", "uni",
			"arbeitsstress", "hektisch", "keine zeit", "anspannung", "verspannung", "kopfschmerzen",
			"nicht entspannen", "abschalten", "gedanken kreisen", "sorgen", "zukunftsangst",
		},
		en: []string{
			"stress", "stressful", "pressure", "exam", "test anxiety", "performance",
			"performance pressure", "overwhelmed", "overloaded", "deadline", "time pressure", "studies",
			"school", "university", "work stress", "hectic", "no time", "tension", "tense", "headaches",
			"can't relax", "switch off", "racing thoughts", "worries", "future anxiety",
		},
	},
	"sleep": {
		de: []string{
			"schlaf", "schlafstörung", "schlafprobleme", "insomnie", "einschlafen", "durchschlafen",
			"aufwachen", "alptraum", "albtraum", "alpträume", "müde", "müdigkeit", "tagesmüdigkeit",
			"erschöpft", "nicht schlafen", "wachliegen", "grübeln nachts", "gedanken nachts",
			"schlafmittel", "unausgeschlafen", "schlafrhythmus", "schlaflos", "rastlos",
		},
		en: []string{
			"sleep", "sleep disorder", "sleep problems", "insomnia", "falling asleep", "staying asleep",
			"waking up", "nightmare", "nightmares", "tired", "tiredness", "daytime fatigue", "exhausted",
			"can't sleep", "lying awake", "ruminating at night", "thoughts at night", "sleeping pills",
			"not rested", "sleep pattern", "sleepless", "restless",
		},
	},
}

// subTopicKeywords refines topic detection down to subtopic ids.
var subTopicKeywords = map[string]languageKeywords{
	"social_anxiety": {
		de: []string{
			"soziale angst", "sozialangst", "unter menschen", "menschenmenge", "blamieren", "peinlich",
			"bewertung", "beurteilt", "beobachtet", "kritisiert", "präsentation", "vortrag",
			"öffentlich sprechen", "party", "smalltalk", "neue leute", "fremde",
		},
		en: []string{
			"social anxiety", "social situations", "crowd", "embarrass", "judged", "evaluated", "watched",
			"criticized", "presentation", "public speaking", "party", "small talk", "new people",
			"strangers",
		},
	},
	"panic_attacks": {
		de: []string{
			"panikattacke", "panik", "herzrasen", "atemnot", "ersticken", "sterben", "kontrollverlust",
			"ohnmacht", "schwindel", "zittern", "schweißausbruch", "brustschmerz", "hyperventilieren",
			"plötzlich angst",
		},
		en: []string{
			"panic attack", "panic", "racing heart", "can't breathe", "suffocating", "dying",
			"losing control", "faint", "dizzy", "trembling", "sweating", "chest pain", "hyperventilate",
			"sudden fear",
		},
	},
	"phobias": {
		de: []string{
			"phobie", "höhenangst", "flugangst", "spinnen", "schlangen", "enge räume", "klaustrophobie",
			"agoraphobie", "spritzenangst", "blut", "zahnarzt", "spezifische angst", "vermeiden",
			"panik bei",
		},
		en: []string{
			"phobia", "fear of heights", "fear of flying", "spiders", "snakes", "tight spaces",
			"claustrophobia", "agoraphobia", "needles", "blood", "dentist", "specific fear", "avoid",
			"panic when",
		},
	},
	"generalized_anxiety": {
		de: []string{
			"ständig sorgen", "grübeln", "gedankenkreisen", "was wenn", "worst case", "katastrophe",
			"angst vor allem", "nicht abschalten", "anspannung", "rastlos", "nervös", "unruhe", "besorgt",
			"zukunftsangst",
		},
		en: []string{
			"constant worry", "ruminating", "overthinking", "what if", "worst case", "catastrophe",
			"anxious about everything", "can't switch off", "tense", "restless", "nervous", "uneasy",
			"worried", "future anxiety",
		},
	},
	"chronic_sadness": {
		de: []string{
			"immer traurig", "ständig traurig", "tiefe traurigkeit", "schwermut", "melancholie",
			"kein licht", "dunkel", "grau", "freudlos", "keine freude mehr", "nichts macht spaß", "leer",
			"innerlich leer",
		},
		en: []string{
			"always sad", "constantly sad", "deep sadness", "melancholy", "no light", "dark", "gray",
			"joyless", "no joy", "nothing fun", "empty", "emotionally empty",
		},
	},
	"lack_motivation": {
		de: []string{
			"keine motivation", "antriebslos", "kein antrieb", "nicht aufstehen", "im bett bleiben",
			"nichts schaffen", "alles zu viel", "keine energie", "erschöpft", "müde", "kraftlos",
			"prokrastinieren", "aufschieben",
		},
		en: []string{
			"no motivation", "no drive", "can't get up", "stay in bed", "can't do anything",
			"everything too much", "no energy", "exhausted", "tired", "weak", "procrastinate",
			"putting off",
		},
	},
	"grief": {
		de: []string{
			"trauer", "verlust", "gestorben", "tod", "verstorben", "abschied", "vermissen", "sehnsucht",
			"nie wieder", "fehlt mir", "trauerarbeit", "beerdigung", "loslassen",
		},
		en: []string{
			"grief", "loss", "died", "death", "passed away", "goodbye", "miss", "longing", "never again",
			"miss them", "mourning", "funeral", "letting go",
		},
	},
	"loneliness": {
		de: []string{
			"einsam", "einsamkeit", "allein", "isoliert", "niemand", "keine freunde", "sozial isoliert",
			"ausgegrenzt", "nicht dazugehören", "verlassen", "keiner versteht mich", "unverbunden",
		},
		en: []string{
			"lonely", "loneliness", "alone", "isolated", "nobody", "no friends", "socially isolated",
			"excluded", "don't belong", "abandoned", "no one understands", "disconnected",
		},
	},
	"couple_conflicts": {
		de: []string{
			"streit", "streiten", "konflikt", "partner streiten", "immer streit", "eskaliert",
			"kommunikation", "nicht verstehen", "anschreien", "vorwürfe", "kritik", "nörgeln",
			"beschuldigen",
		},
		en: []string{
			"fight", "fighting", "conflict", "arguing", "always fighting", "escalate", "communication",
			"don't understand", "yelling", "blame", "criticism", "nagging", "accusing",
		},
	},
	"breakup": {
		de: []string{
			"trennung", "getrennt", "ex", "beziehung beendet", "schluss gemacht", "verlassen worden",
			"zurück", "liebeskummer", "herzschmerz", "nicht darüber hinweg",
		},
		en: []string{
			"breakup", "broke up", "ex", "relationship ended", "dumped", "left", "get back", "heartbreak",
			"heartache", "can't get over",
		},
	},
	"dating_issues": {
		de: []string{
			"dating", "kennenlernen", "single", "niemanden finden", "online dating", "tinder",
			"erste date", "verlieben", "flirten", "bindungsangst", "commitment", "beziehung eingehen",
		},
		en: []string{
			"dating", "meeting people", "single", "can't find anyone", "online dating", "tinder",
			"first date", "falling in love", "flirting", "commitment issues", "fear of commitment",
		},
	},
	"intimacy": {
		de: []string{
			"intimität", "nähe", "sex", "sexualität", "sexuelle probleme", "kein sex", "lust", "libido",
			"körperlich", "zärtlichkeit", "berührung", "distanz",
		},
		en: []string{
			"intimacy", "closeness", "sex", "sexuality", "sexual problems", "no sex", "desire", "libido",
			"physical", "affection", "touch", "distance",
		},
	},
	"ptsd": {
		de: []string{
			"ptbs", "posttraumatisch", "flashback", "flashbacks", "wiedererlebend", "trigger", "ausgelöst",
			"albtraum", "albträume", "nicht vergessen", "verfolgt mich", "bilder im kopf",
		},
		en: []string{
			"ptsd", "post-traumatic", "flashback", "flashbacks", "reliving", "trigger", "triggered",
			"nightmare", "nightmares", "can't forget", "haunts me", "images in my head",
		},
	},
	"childhood_trauma": {
		de: []string{
			"kindheit", "kindheitstrauma", "als kind", "eltern", "missbrauch", "misshandlung",
			"vernachlässigt", "geschlagen", "übergriff", "früher", "aufgewachsen", "familiär",
		},
		en: []string{
			"childhood", "childhood trauma", "as a child", "parents", "abuse", "mistreatment", "neglected",
			"beaten", "assault", "growing up", "family",
		},
	},
	"accident_trauma": {
		de: []string{
			"unfall", "autounfall", "verkehrsunfall", "motorrad", "überfahren", "zusammenstoß",
			"krankenhaus", "verletzt", "operation", "notfall", "rettungswagen",
		},
		en: []string{
			"accident", "car accident", "traffic accident", "motorcycle", "hit by", "collision",
			"hospital", "injured", "surgery", "emergency", "ambulance",
		},
	},
	"loss": {
		de: []string{
			"verlust", "verloren", "gestorben", "tot", "abschied", "beerdigung", "trauer", "weg",
			"nie wieder", "fehlt", "vermisse",
		},
		en: []string{
			"loss", "lost", "died", "dead", "goodbye", "funeral", "grief", "gone", "never again",
			"missing", "miss",
		},
	},
	"work_stress": {
		de: []string{
			"arbeitsstress", "job stress", "überstunden", "deadline", "druck", "chef", "vorgesetzter",
			"kollegen", "meeting", "projekt", "workload", "zu viel arbeit", "büro",
		},
		en: []string{
			"work stress", "job stress", "overtime", "deadline", "pressure", "boss", "supervisor",
			"colleagues", "meeting", "project", "workload", "too much work", "office",
		},
	},
	"exhaustion": {
		de: []string{
			"erschöpft", "erschöpfung", "ausgebrannt", "keine kraft", "am ende", "völlig fertig", "kaputt",
			"zusammenbruch", "nicht mehr können", "leer", "energie weg",
		},
		en: []string{
			"exhausted", "exhaustion", "burned out", "no strength", "at the end", "completely done",
			"broken", "breakdown", "can't anymore", "empty", "no energy left",
		},
	},
	"work_life_balance": {
		de: []string{
			"work-life", "balance", "freizeit", "hobby", "familie vernachlässigt", "nur arbeit",
			"keine zeit", "privatleben", "wochenende arbeiten", "feierabend", "abschalten",
		},
		en: []string{
			"work-life", "balance", "free time", "hobby", "neglecting family", "only work", "no time",
			"private life", "working weekends", "after work", "switch off",
		},
	},
	"alcohol": {
		de: []string{
			"alkohol", "trinken", "betrunken", "saufen", "bier", "wein", "schnaps", "wodka", "kater",
			"entzug", "trocken", "nüchtern", "alkoholiker",
		},
		en: []string{
			"alcohol", "drinking", "drunk", "booze", "beer", "wine", "liquor", "vodka", "hangover",
			"withdrawal", "sober", "alcoholic",
		},
	},
	"drugs": {
		de: []string{
			"drogen", "kiffen", "cannabis", "kokain", "mdma", "ecstasy", "speed", "heroin", "dealer",
			"high", "rausch", "substanz", "illegale",
		},
		en: []string{
			"drugs", "weed", "cannabis", "cocaine", "mdma", "ecstasy", "speed", "heroin", "dealer", "high",
			"substance", "illegal",
		},
	},
	"behavioral_addiction": {
		de: []string{
			"spielsucht", "glücksspiel", "casino", "wetten", "sportwetten", "automaten",
			"online glücksspiel", "verlust", "schulden", "kaufsucht", "shoppen", "pornografie",
		},
		en: []string{
			"gambling", "casino", "betting", "sports betting", "slot machines", "online gambling", "loss",
			"debt", "shopping addiction", "pornography",
		},
	},
	"gaming": {
		de: []string{
			"gaming", "zocken", "videospiele", "computerspiele", "online spiele", "süchtig nach spielen",
			"nächte durchspielen", "realität", "virtuelle welt",
		},
		en: []string{
			"gaming", "video games", "computer games", "online games", "addicted to games",
			"playing all night", "reality", "virtual world",
		},
	},
	"anorexia": {
		de: []string{
			"magersucht", "anorexie", "nicht essen", "hungern", "fasten", "kalorien zählen", "zu dünn",
			"untergewicht", "abnehmen", "gewicht verlieren", "kontrollieren",
		},
		en: []string{
			"anorexia", "not eating", "starving", "fasting", "counting calories", "too thin",
			"underweight", "lose weight", "control",
		},
	},
	"bulimia": {
		de: []string{
			"bulimie", "erbrechen", "kotzen", "finger in hals", "purging", "essen und erbrechen",
			"kompensieren", "abführmittel", "binge purge",
		},
		en: []string{
			"bulimia", "throwing up", "vomiting", "purging", "binge purge", "compensate", "laxatives",
		},
	},
	"binge_eating": {
		de: []string{
			"essanfall", "fressanfall", "binge eating", "unkontrolliert essen", "nicht aufhören",
			"vollstopfen", "schuldgefühle nach essen", "heimlich essen", "emotional essen",
		},
		en: []string{
			"binge eating", "eating uncontrollably", "can't stop eating", "stuffing", "guilt after eating",
			"eating in secret", "emotional eating",
		},
	},
	"concentration": {
		de: []string{
			"konzentration", "konzentrationsprobleme", "nicht konzentrieren", "abgelenkt", "ablenkung",
			"fokus", "aufmerksamkeit", "vergesslich", "durcheinander",
		},
		en: []string{
			"concentration", "concentration problems", "can't concentrate", "distracted", "distraction",
			"focus", "attention", "forgetful", "scattered",
		},
	},
	"impulsivity": {
		de: []string{
			"impulsiv", "impulsivität", "ohne nachdenken", "spontan", "bereuen", "vorschnell",
			"ungeduldig", "nicht warten können", "unterbrechen",
		},
		en: []string{
			"impulsive", "impulsivity", "without thinking", "spontaneous", "regret", "hasty", "impatient",
			"can't wait", "interrupting",
		},
	},
	"adult_adhd": {
		de: []string{
			"erwachsenen adhs", "adhs erwachsene", "spät diagnostiziert", "nie gewusst",
			"endlich diagnose", "erklärung", "immer schon so", "chaos im kopf",
		},
		en: []string{
			"adult adhd", "late diagnosed", "never knew", "finally diagnosed", "explanation",
			"always been like this", "chaos in head",
		},
	},
	"self_esteem": {
		de: []string{
			"selbstwert", "selbstwertgefühl", "selbstbewusstsein", "minderwertig", "nicht gut genug",
			"wertlos", "versager", "selbstzweifel", "unsicher",
		},
		en: []string{
			"self-esteem", "self-worth", "confidence", "inferior", "not good enough", "worthless",
			"failure", "self-doubt", "insecure",
		},
	},
	"boundaries": {
		de: []string{
			"grenzen", "grenzen setzen", "nein sagen", "people pleaser", "für alle da", "ausgenutzt",
			"überfordert", "zu viel für andere", "eigene bedürfnisse",
		},
		en: []string{
			"boundaries", "setting boundaries", "saying no", "people pleaser", "there for everyone",
			"taken advantage", "overwhelmed", "too much for others", "own needs",
		},
	},
	"life_changes": {
		de: []string{
			"veränderung", "neuanfang", "lebenskrise", "midlife", "orientierung", "wer bin ich", "sinn",
			"lebenssinn", "umbruch", "neuorientierung",
		},
		en: []string{
			"change", "new beginning", "life crisis", "midlife", "direction", "who am i", "meaning",
			"purpose", "transition", "reorientation",
		},
	},
	"chronic_stress": {
		de: []string{
			"dauerstress", "chronischer stress", "ständig stress", "nie entspannt", "immer angespannt",
			"keine ruhe", "rastlos",
		},
		en: []string{
			"constant stress", "chronic stress", "always stressed", "never relaxed", "always tense",
			"no peace", "restless",
		},
	},
	"exam_anxiety": {
		de: []string{
			"prüfungsangst", "prüfung", "klausur", "examen", "test", "durchfallen", "versagen", "blackout",
			"vorbereitung",
		},
		en: []string{
			"exam anxiety", "exam", "test", "finals", "fail", "failing", "blackout", "preparation",
		},
	},
	"performance_pressure": {
		de: []string{
			"leistungsdruck", "druck", "erwartungen", "perfektion", "perfektionismus", "nicht genug",
			"muss funktionieren", "fehler", "versagen",
		},
		en: []string{
			"performance pressure", "pressure", "expectations", "perfection", "perfectionism",
			"not enough", "must perform", "mistakes", "failure",
		},
	},
	"insomnia": {
		de: []string{
			"schlaflos", "insomnie", "nicht einschlafen", "nicht durchschlafen", "wachliegen",
			"stundenlang wach", "müde aber wach",
		},
		en: []string{
			"sleepless", "insomnia", "can't fall asleep", "can't stay asleep", "lying awake",
			"awake for hours", "tired but awake",
		},
	},
	"nightmares": {
		de: []string{
			"albtraum", "albträume", "schlecht träumen", "aufwachen", "schweißgebadet", "angst nachts",
			"träume verfolgen",
		},
		en: []string{
			"nightmare", "nightmares", "bad dreams", "wake up", "sweating", "fear at night",
			"dreams haunt",
		},
	},
	"sleep_anxiety": {
		de: []string{
			"angst vor schlaf", "schlafangst", "angst einzuschlafen", "nicht schlafen wollen",
			"gedanken nachts", "grübeln nachts", "nicht zur ruhe kommen",
		},
		en: []string{
			"fear of sleep", "sleep anxiety", "afraid to fall asleep", "don't want to sleep",
			"thoughts at night", "ruminating at night", "can't calm down",
		},
	},
	"divorce": {
		de: []string{
			"scheidung", "scheiden", "trennung ehe", "anwalt", "sorgerecht", "unterhalt",
			"vermögen teilen",
		},
		en: []string{
			"divorce", "divorcing", "separation marriage", "lawyer", "custody", "alimony",
			"dividing assets",
		},
	},
	"parenting": {
		de: []string{
			"erziehung", "kind erziehen", "eltern sein", "elternschaft", "teenager", "pubertät",
			"kind verstehen", "grenzen setzen kind",
		},
		en: []string{
			"parenting", "raising child", "being parent", "parenthood", "teenager", "puberty",
			"understand child", "setting limits child",
		},
	},
	"family_conflicts": {
		de: []string{
			"familienstreit", "familienkonflikt", "familie streitet", "eltern streiten", "geschwister",
			"erbschaft", "familienfeier", "zusammenkünfte",
		},
		en: []string{
			"family fight", "family conflict", "family arguing", "parents fighting", "siblings",
			"inheritance", "family gathering", "reunions",
		},
	},
}

// crisisKeywords are checked in fixed priority order: suicidal, then
// self_harm, then acute_danger. The first hit wins.
var crisisKeywords = map[string]languageKeywords{
	"suicidal": {
		de: []string{
			"suizid", "selbstmord", "umbringen", "mich umbringen", "das leben nehmen", "nicht mehr leben",
			"will nicht mehr leben", "möchte nicht mehr leben", "will sterben", "möchte sterben",
			"sterben wollen", "dem leben ein ende", "allem ein ende setzen", "allem ein ende machen",
			"keinen sinn mehr zu leben", "warum noch leben", "nicht mehr aufwachen",
			"einschlafen und nicht mehr aufwachen", "wäre besser tot", "besser ohne mich",
			"welt ohne mich", "allen eine last", "niemandem mehr zur last", "abschiedsbrief",
			"testament schreiben", "sachen verschenken", "wie man stirbt", "methoden", "alles beenden",
			"für immer weg", "endgültig schluss",
		},
		en: []string{
			"suicide", "suicidal", "kill myself", "end my life", "take my life", "don't want to live",
			"want to die", "wish i was dead", "better off dead", "end it all", "no reason to live",
			"why keep living", "no point living", "not wake up", "fall asleep and never wake up",
			"world without me", "everyone better off without me", "burden to everyone",
			"burden to my family", "suicide note", "goodbye letter", "giving away my things", "how to die",
			"methods to", "end everything", "gone forever", "final goodbye",
		},
	},
	"self_harm": {
		de: []string{
			"selbstverletzung", "selbst verletzen", "mich verletzen", "mich selbst verletzen", "ritzen",
			"schneiden", "mich schneiden", "mich ritzen", "mir weh tun", "mir selbst weh tun",
			"mir schmerzen zufügen", "bluten sehen", "narben", "mich bestrafen", "verbrennen",
			"mich verbrennen", "haare ausreißen",
		},
		en: []string{
			"self-harm", "self harm", "hurt myself", "hurting myself", "cutting", "cut myself",
			"cutting myself", "cause myself pain", "inflict pain", "make myself bleed", "see blood",
			"scars", "punish myself", "burn myself", "burning myself", "pull out hair",
		},
	},
	"acute_danger": {
		de: []string{
			"will mir was antun", "werde mir was antun", "mir etwas antun", "heute nacht", "heute noch",
			"gleich", "jetzt sofort", "halte es nicht mehr aus", "ertrage es nicht mehr",
			"kann nicht mehr weitermachen", "schaffe es nicht mehr", "am ende", "völlig am ende",
			"total am ende", "keinen ausweg", "kein ausweg mehr", "ausweglos", "hoffnungslos",
			"völlig hoffnungslos", "keine hoffnung mehr", "niemand kann mir helfen", "nichts hilft mehr",
		},
		en: []string{
			"going to hurt myself", "about to hurt myself", "harm myself tonight", "tonight", "right now",
			"immediately", "can't take it anymore", "can't bear it anymore", "can't go on",
			"can't do this anymore", "at the end", "completely done", "no way out", "no escape", "trapped",
			"hopeless", "completely hopeless", "no hope left", "nobody can help", "nothing helps anymore",
		},
	},
}

// intensityMarkers signal urgency. A single high marker forces high, two or
// more low markers indicate low, everything else reads as medium.
var intensityMarkers = map[string]languageKeywords{
	"high": {
		de: []string{
			"dringend", "sofort", "nicht mehr", "kann nicht mehr", "halte nicht mehr aus", "verzweifelt",
			"hoffnungslos", "ausweg", "keinen ausweg", "ertrage nicht", "zusammenbruch", "krise",
			"notfall", "suizid", "selbstverletzung", "ritzen", "sterben", "nicht leben", "aufhören",
			"ende", "schluss", "ständig", "jeden tag", "permanent", "extrem", "unerträglich", "hölle",
			"gefangen", "akut", "eskaliert", "verschlimmert", "kritisch", "am limit",
		},
		en: []string{
			"urgent", "immediately", "can't anymore", "can't take it", "can't handle", "desperate",
			"hopeless", "no way out", "can't bear", "unbearable", "breakdown", "crisis", "emergency",
			"suicide", "self-harm", "cutting", "die", "don't want to live", "stop", "end", "constantly",
			"every day", "permanent", "extreme", "unbearable", "hell", "trapped", "acute", "escalated",
			"worsened", "critical", "at my limit",
		},
	},
	"low": {
		de: []string{
			"manchmal", "gelegentlich", "ab und zu", "leicht", "ein bisschen", "kleinigkeit", "optimieren",
			"verbessern", "wachsen", "entwickeln", "neugierig", "interessiert", "ausprobieren",
			"präventiv", "vorsorge", "bevor", "coaching", "selbstoptimierung", "potenzial", "stärken",
		},
		en: []string{
			"sometimes", "occasionally", "once in a while", "slightly", "a little", "minor", "optimize",
			"improve", "grow", "develop", "curious", "interested", "try out", "preventive", "prevention",
			"before", "coaching", "self-improvement", "potential", "strengths",
		},
	},
}

// methodKeywords hint at a preferred therapy method.
var methodKeywords = map[string]languageKeywords{
	"cbt": {
		de: []string{
			"gedanken", "denkmuster", "gedankenmuster", "überzeugung", "glaubenssätze", "verhalten",
			"verhaltenstherapie", "umstrukturieren", "rational", "logisch", "übung", "hausaufgabe",
			"praktisch", "konkret", "techniken", "strategien",
		},
		en: []string{
			"thoughts", "thinking patterns", "thought patterns", "beliefs", "belief", "behavior",
			"behavioral", "restructure", "rational", "logical", "exercise", "homework", "practical",
			"concrete", "techniques", "strategies",
		},
	},
	"psychodynamic": {
		de: []string{
			"kindheit", "vergangenheit", "früher", "eltern", "prägung", "muster", "unbewusst",
			"unterbewusst", "tiefe", "wurzeln", "ursprung", "verstehen warum", "zusammenhänge",
			"biografie", "lebensgeschichte", "inneres kind",
		},
		en: []string{
			"childhood", "past", "before", "parents", "upbringing", "patterns", "unconscious",
			"subconscious", "deep", "roots", "origin", "understand why", "connections", "biography",
			"life story", "inner child",
		},
	},
	"mindfulness": {
		de: []string{
			"achtsamkeit", "meditation", "entspannung", "atmen", "atmung", "yoga", "präsent", "gegenwart",
			"hier und jetzt", "akzeptanz", "annehmen", "beobachten", "körperwahrnehmung", "spüren", "ruhe",
			"gelassen",
		},
		en: []string{
			"mindfulness", "meditation", "relaxation", "breathing", "breath", "yoga", "present", "moment",
			"here and now", "acceptance", "accepting", "observing", "body awareness", "feeling", "calm",
			"peaceful",
		},
	},
	"emdr": {
		de: []string{
			"emdr", "augenbewegung", "trauma verarbeiten", "flashback", "erinnerung verarbeiten",
			"belastende erinnerung", "desensibilisierung", "reprocessing",
		},
		en: []string{
			"emdr", "eye movement", "process trauma", "flashback", "process memory", "distressing memory",
			"desensitization", "reprocessing",
		},
	},
	"systemic": {
		de: []string{
			"system", "systemisch", "familie", "beziehung", "dynamik", "rolle", "kommunikation",
			"interaktion", "umfeld", "kontext", "ressourcen", "lösungsorientiert", "perspektive",
			"perspektivwechsel",
		},
		en: []string{
			"system", "systemic", "family", "relationship", "dynamics", "role", "communication",
			"interaction", "environment", "context", "resources", "solution-focused", "perspective",
			"change perspective",
		},
	},
}

// communicationStyleMarkers separate directive from empathetic wording.
var communicationStyleMarkers = map[string]languageKeywords{
	"directive": {
		de: []string{
			"anleitung", "struktur", "plan", "vorgabe", "konkret", "klar", "direkt", "anweisungen",
			"ratschlag", "tipps", "was tun", "was soll ich", "lösung", "praktisch", "handlung", "schritte",
			"maßnahmen",
		},
		en: []string{
			"guidance", "structure", "plan", "clear", "concrete", "direct", "instructions", "advice",
			"tips", "what to do", "what should i", "solution", "practical", "action", "steps", "measures",
		},
	},
	"empathetic": {
		de: []string{
			"verstanden werden", "zuhören", "gefühle", "emotional", "einfühlsam", "verständnis",
			"mitgefühl", "reden", "erzählen", "aussprechen", "abladen", "teilen", "gehört werden",
			"nicht allein", "warmherzig",
		},
		en: []string{
			"understood", "listen", "feelings", "emotional", "empathetic", "understanding", "compassion",
			"talk", "share", "express", "vent", "heard", "not alone", "warmhearted",
		},
	},
}

// therapyFocusMarkers indicate the time orientation a client leans toward.
var therapyFocusMarkers = map[string]languageKeywords{
	"past": {
		de: []string{
			"kindheit", "früher", "vergangenheit", "damals", "eltern", "aufgewachsen", "prägung",
			"ursprung", "wurzeln", "erfahrung", "erlebt", "trauma", "missbrauch", "vernachlässigt",
			"biografie", "lebensgeschichte",
		},
		en: []string{
			"childhood", "before", "past", "back then", "parents", "grew up", "upbringing", "origin",
			"roots", "experience", "experienced", "trauma", "abuse", "neglected", "biography",
			"life story",
		},
	},
	"present": {
		de: []string{
			"aktuell", "jetzt", "gerade", "momentan", "situation", "alltag", "bewältigen", "umgehen",
			"heute", "derzeit", "konkret", "praktisch",
		},
		en: []string{
			"current", "now", "right now", "at the moment", "situation", "daily life", "cope", "deal with",
			"today", "currently", "concrete", "practical",
		},
	},
	"future": {
		de: []string{
			"zukunft", "ziel", "ziele", "veränderung", "entwicklung", "wachsen", "werden", "planen",
			"erreichen", "vision", "wünsche", "träume", "potenzial", "möglichkeiten", "perspektive",
			"neustart",
		},
		en: []string{
			"future", "goal", "goals", "change", "development", "grow", "become", "plan", "achieve",
			"vision", "wishes", "dreams", "potential", "possibilities", "perspective", "fresh start",
		},
	},
	"holistic": {
		de: []string{
			"ganzheitlich", "körper und geist", "körper", "seele", "verbindung", "alles zusammen",
			"verschiedene bereiche", "komplex",
		},
		en: []string{
			"holistic", "body and mind", "body", "soul", "connection", "everything together",
			"different areas", "complex",
		},
	},
}
