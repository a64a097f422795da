package tutor

import (
	"fmt"

	"github.com/rgkonda/englishtutor/internal/grammar"
)

func teluguExplanation(record grammar.ErrorRecord) string {
	switch record.Category {
	case grammar.SubjectVerbAgreement:
		return fmt.Sprintf("కర్త మరియు క్రియ మధ్య సరైన అనుసంధానం లేదు. '%s' బదులు '%s' వాడండి.", record.Original, record.Corrected)
	case grammar.TenseError:
		return fmt.Sprintf("కాలం తప్పుగా ఉంది. '%s' బదులు '%s' సరైనది.", record.Original, record.Corrected)
	case grammar.ArticleError:
		return "ఆర్టికల్ తప్పు. స్వర ధ్వనితో మొదలయ్యే పదాల ముందు 'an' వాడండి."
	case grammar.PrepositionError:
		return fmt.Sprintf("ప్రిపోజిషన్ తప్పు. '%s' బదులు '%s' వాడండి.", record.Original, record.Corrected)
	case grammar.CapitalizationError:
		return fmt.Sprintf("పెద్దక్షరం వాడాల్సిన చోట వాడలేదు. '%s' బదులు '%s' రాయండి.", record.Original, record.Corrected)
	case grammar.PunctuationError:
		return "వాక్యం చివర విరామ చిహ్నం ఉండాలి."
	default:
		return "వ్యాకరణ తప్పు ఉంది. దయచేసి సరిచేసుకోండి."
	}
}

func englishExplanation(record grammar.ErrorRecord) string {
	switch record.Category {
	case grammar.SubjectVerbAgreement:
		return fmt.Sprintf("The subject and verb don't agree. Use '%s' instead of '%s'.", record.Corrected, record.Original)
	case grammar.TenseError:
		return fmt.Sprintf("Wrong tense used. The correct form is '%s' instead of '%s'.", record.Corrected, record.Original)
	case grammar.ArticleError:
		return "Use 'an' before words starting with vowel sounds (a, e, i, o, u)."
	case grammar.PrepositionError:
		return fmt.Sprintf("Wrong preposition. Use '%s' instead of '%s'.", record.Corrected, record.Original)
	case grammar.CapitalizationError:
		return fmt.Sprintf("Always capitalize '%s'. It should be '%s' not '%s'.", record.Corrected, record.Corrected, record.Original)
	case grammar.PunctuationError:
		return "Every sentence should end with a punctuation mark (. ! ?)."
	default:
		return fmt.Sprintf("Grammar error: use '%s' instead of '%s'.", record.Corrected, record.Original)
	}
}

var topicExamples = map[string][]Example{
	"greetings": {
		{English: "Hello, how are you?", Telugu: "హలో, మీరు ఎలా ఉన్నారు?"},
		{English: "Good morning!", Telugu: "శుభోదయం!"},
		{English: "Nice to meet you.", Telugu: "మిమ్మల్ని కలవడం ఆనందంగా ఉంది."},
	},
	"time": {
		{English: "What time is it?", Telugu: "ఇప్పుడు ఎంత సమయం?"},
		{English: "It's 3 o'clock.", Telugu: "ఇప్పుడు 3 గంటలు."},
		{English: "I wake up at 7 AM.", Telugu: "నేను ఉదయం 7 గంటలకు లేస్తాను."},
	},
}

var beginnerExamples = []Example{
	{English: "I like to read books.", Telugu: "నాకు పుస్తకాలు చదవడం ఇష్టం."},
	{English: "She is a good student.", Telugu: "ఆమె మంచి విద్యార్థి."},
}

var generalExamples = []Example{
	{English: "I enjoy learning new languages.", Telugu: "కొత్త భాషలు నేర్చుకోవడం నాకు ఆనందం."},
	{English: "Practice makes perfect.", Telugu: "అభ్యాసం వల్ల పరిపూర్ణత వస్తుంది."},
}

var correctEncouragements = []string{
	"Excellent! Your sentence is perfect! 🌟 మీ వాక్యం చాలా సరిగా ఉంది!",
	"Great job! Keep practicing like this! 👍 ఇలాగే అభ్యాసం కొనసాగించండి!",
	"Perfect grammar! You're improving! ✨ మీ వ్యాకరణం చాలా బాగుంది!",
	"Well done! Your English is getting better! 🎉 మీ ఇంగ్లీష్ మెరుగుపడుతోంది!",
}

var incorrectEncouragements = []string{
	"Good try! Mistakes help us learn. 💪 తప్పులు మనల్ని నేర్పుతాయి!",
	"Don't worry, practice makes perfect! 🌱 చింతించకండి, అభ్యాసం వల్ల పరిపూర్ణత వస్తుంది!",
	"Keep trying! You're learning well! 🚀 ప్రయత్నం కొనసాగించండి!",
	"Mistakes are normal when learning! 📚 నేర్చుకునేటప్పుడు తప్పులు సహజం!",
}

var nextSuggestions = []string{
	"Try forming a question using 'What', 'Where', or 'How'.",
	"Practice using past tense verbs in your next sentence.",
	"Try describing something you did yesterday.",
	"Make a sentence using 'I am going to...'",
	"Practice introducing yourself to someone new.",
	"Try using 'There is' or 'There are' in a sentence.",
}

// grammarTip picks one tip per response. Subject-verb agreement wins over
// tense, tense over articles; other categories get no tip.
func grammarTip(corrections []Correction) string {
	byType := make(map[string]bool, len(corrections))
	for _, c := range corrections {
		byType[c.MistakeType] = true
	}

	switch {
	case byType[string(grammar.SubjectVerbAgreement)]:
		return "💡 Grammar Tip: Subject and verb must agree. 'I am', 'He is', 'They are'."
	case byType[string(grammar.TenseError)]:
		return "💡 Grammar Tip: Use correct tense - Past: 'I went', Present: 'I go', Future: 'I will go'."
	case byType[string(grammar.ArticleError)]:
		return "💡 Grammar Tip: Use 'a' before consonants, 'an' before vowels. 'A book', 'An apple'."
	default:
		return ""
	}
}

const fallbackPronunciationTip = "💡 Pronunciation tip: Focus on clear vowel sounds and word stress. Practice slowly first, then increase speed."

const apologyEncouragement = "Sorry, I had trouble understanding. Please try again! క్షమించండి, అర్థం చేసుకోవడంలో సమస్య. దయచేసి మళ్ళీ ప్రయత్నించండి!"

var lessonTemplates = map[string]LessonContent{
	"grammar": {
		Title:              "English Grammar Fundamentals",
		ExplanationEnglish: "Learn essential grammar rules including verb tenses, sentence structure, and proper word order. This lesson focuses on present tense and basic sentence construction.",
		ExplanationTelugu:  "క్రియాపదాల కాలాలు, వాక్య నిర్మాణం మరియు సరైన పద క్రమంతో సహా అవసరమైన వ్యాకరణ నియమాలను నేర్చుకోండి.",
		KeyPoints: []string{
			"Subject-Verb-Object sentence structure",
			"Present tense verb forms (I am, You are, He/She is)",
			"Common grammar patterns in English",
			"Difference between 'a' and 'an' articles",
		},
		Examples: []Example{
			{English: "I am a student.", Telugu: "నేను విద్యార్థిని."},
			{English: "She reads books daily.", Telugu: "ఆమె రోజూ పుస్తకాలు చదువుతుంది."},
			{English: "They are playing cricket.", Telugu: "వారు క్రికెట్ ఆడుతున్నారు."},
		},
	},
	"vocabulary": {
		Title:              "Daily Life Vocabulary",
		ExplanationEnglish: "Build your vocabulary with commonly used English words in daily life situations. Learn words for family, home, work, and everyday activities.",
		ExplanationTelugu:  "దైనందిన జీవిత పరిస్థితులలో సాధారణంగా ఉపయోగించే ఇంగ్లీష్ పదాలతో మీ పదజాలం పెంచుకోండి.",
		KeyPoints: []string{
			"Family members: mother, father, brother, sister",
			"Home items: table, chair, bed, kitchen",
			"Daily activities: eat, sleep, work, study",
			"Time expressions: morning, afternoon, evening",
		},
		Examples: []Example{
			{English: "My mother cooks delicious food.", Telugu: "మా అమ్మ రుచికరమైన ఆహారం వండుతుంది."},
			{English: "I study in the evening.", Telugu: "నేను సాయంత్రం చదువుకుంటాను."},
			{English: "The book is on the table.", Telugu: "పుస్తకం టేబుల్ మీద ఉంది."},
		},
	},
	"conversation": {
		Title:              "Basic Conversation Skills",
		ExplanationEnglish: "Learn how to have simple conversations in English. Practice greetings, introductions, and basic questions and answers.",
		ExplanationTelugu:  "ఇంగ్లీష్‌లో సరళమైన సంభాషణలు ఎలా చేయాలో నేర్చుకోండి. వందనలు, పరిచయాలు మరియు ప్రాథమిక ప్రశ్నలు మరియు సమాధానాలను అభ్యసించండి.",
		KeyPoints: []string{
			"Greetings: Hello, Good morning, How are you?",
			"Introductions: My name is..., I am from...",
			"Polite expressions: Please, Thank you, Excuse me",
			"Basic questions: What, Where, When, How",
		},
		Examples: []Example{
			{English: "Hello, how are you today?", Telugu: "హలో, ఈరోజు మీరు ఎలా ఉన్నారు?"},
			{English: "My name is Ravi. Nice to meet you.", Telugu: "నా పేరు రవి. మిమ్మల్ని కలవడం ఆనందంగా ఉంది."},
			{English: "Where are you from?", Telugu: "మీరు ఎక్కడినుంచి వచ్చారు?"},
		},
	},
	"pronunciation": {
		Title:              "English Pronunciation Guide",
		ExplanationEnglish: "Improve your English pronunciation with focus on common sounds that Telugu speakers find challenging.",
		ExplanationTelugu:  "తెలుగు మాట్లాడేవారికి కష్టంగా అనిపించే సాధారణ ధ్వనులపై దృష్టి సారించి మీ ఇంగ్లీష్ ఉచ్చారణను మెరుగుపరచుకోండి.",
		KeyPoints: []string{
			"TH sound: 'th' as in 'think' and 'this'",
			"W vs V sounds: 'water' vs 'very'",
			"R sound: 'red', 'right', 'around'",
			"Silent letters: 'k' in 'know', 'b' in 'lamb'",
		},
		Examples: []Example{
			{English: "Think before you speak.", Telugu: "మాట్లాడే ముందు ఆలోచించండి."},
			{English: "Water is very important.", Telugu: "నీరు చాలా ముఖ్యం."},
			{English: "I know the right answer.", Telugu: "నాకు సరైన జవాబు తెలుసు."},
		},
	},
	"writing": {
		Title:              "Basic English Writing",
		ExplanationEnglish: "Learn to write simple sentences and paragraphs in English. Focus on proper sentence structure and basic punctuation.",
		ExplanationTelugu:  "ఇంగ్లీష్‌లో సరళమైన వాక్యాలు మరియు పేరాగ్రాఫ్‌లు ఎలా వ్రాయాలో నేర్చుకోండి. సరైన వాక్య నిర్మాణం మరియు ప్రాథమిక విరామచిహ్నాలపై దృష్టి పెట్టండి.",
		KeyPoints: []string{
			"Start sentences with capital letters",
			"End sentences with periods (.), questions with (?)",
			"Use commas (,) to separate items in a list",
			"Keep sentences simple and clear",
		},
		Examples: []Example{
			{English: "I like apples, oranges, and bananas.", Telugu: "నాకు యాపిల్స్, ఆరెంజ్‌లు మరియు అరటిపండ్లు అంటే ఇష్టం."},
			{English: "What is your favorite color?", Telugu: "మీకు ఇష్టమైన రంగు ఏది?"},
			{English: "The weather is nice today.", Telugu: "ఈరోజు వాతావరణం బాగుంది."},
		},
	},
}

var exerciseTemplates = map[string]map[string][]Exercise{
	"fill_blanks": {
		"beginner": {
			{
				Question:      "Fill in the blank: 'I ___ a student.'",
				Options:       []string{"am", "is", "are", "be"},
				CorrectAnswer: "am",
				Explanation:   "Use 'am' with 'I'. Remember: I am, You are, He/She is.",
			},
			{
				Question:      "Choose the correct article: 'I have ___ apple.'",
				Options:       []string{"a", "an", "the", "no article"},
				CorrectAnswer: "an",
				Explanation:   "Use 'an' before words that start with vowel sounds (a, e, i, o, u).",
			},
			{
				Question:      "Fill in the blank: 'She ___ to school every day.'",
				Options:       []string{"go", "goes", "going", "went"},
				CorrectAnswer: "goes",
				Explanation:   "Use 'goes' with 'She/He/It' in present tense. Add 's' to the verb.",
			},
		},
		"intermediate": {
			{
				Question:      "Choose the correct tense: 'I have ___ this book before.'",
				Options:       []string{"read", "reading", "reads", "to read"},
				CorrectAnswer: "read",
				Explanation:   "Present perfect tense: 'have + past participle'. Past participle of 'read' is 'read'.",
			},
			{
				Question:      "Fill in the blank: 'If I ___ rich, I would help the poor.'",
				Options:       []string{"am", "was", "were", "will be"},
				CorrectAnswer: "were",
				Explanation:   "In conditional sentences (unreal situations), use 'were' with all subjects.",
			},
		},
	},
	"multiple_choice": {
		"beginner": {
			{
				Question:      "What is the plural of 'child'?",
				Options:       []string{"childs", "children", "childes", "child"},
				CorrectAnswer: "children",
				Explanation:   "'Child' has an irregular plural form: 'children'.",
			},
			{
				Question:      "Which sentence is correct?",
				Options:       []string{"I am going to home", "I am going home", "I am going to the home", "I going home"},
				CorrectAnswer: "I am going home",
				Explanation:   "Don't use 'to' with 'home'. Simply say 'going home'.",
			},
		},
		"intermediate": {
			{
				Question:      "Which preposition is correct: 'I have been waiting ___ you for an hour.'?",
				Options:       []string{"to", "for", "with", "at"},
				CorrectAnswer: "for",
				Explanation:   "Use 'wait for' someone or something. 'For' shows the object of waiting.",
			},
		},
	},
	"grammar_check": {
		"beginner": {
			{
				Question:      "Find the mistake: 'He don't like coffee.'",
				Options:       []string{"He doesn't like coffee.", "He not like coffee.", "He don't likes coffee.", "No mistake"},
				CorrectAnswer: "He doesn't like coffee.",
				Explanation:   "With 'He/She/It', use 'doesn't' (does not), not 'don't' (do not).",
			},
			{
				Question:      "Correct this sentence: 'I am liking this book.'",
				Options:       []string{"I like this book.", "I am like this book.", "I liked this book.", "No correction needed"},
				CorrectAnswer: "I like this book.",
				Explanation:   "State verbs like 'like, love, hate' are not used in continuous tense.",
			},
		},
	},
}

var dailyVocabularyWords = []VocabularyWord{
	{
		Word:          "practice",
		MeaningTelugu: "అభ్యాసం",
		PartOfSpeech:  "verb",
		Pronunciation: "/ˈpræktɪs/",
		Examples: []Example{
			{English: "I practice English every day.", Telugu: "నేను ప్రతిరోజూ ఇంగ్లీష్ అభ్యసిస్తాను."},
			{English: "Practice makes perfect.", Telugu: "అభ్యాసం వల్ల పరిపూర్ణత వస్తుంది."},
		},
	},
	{
		Word:          "learn",
		MeaningTelugu: "నేర్చుకోవడం",
		PartOfSpeech:  "verb",
		Pronunciation: "/lɜːrn/",
		Examples: []Example{
			{English: "I want to learn English.", Telugu: "నాకు ఇంగ్లీష్ నేర్చుకోవాలని ఉంది."},
			{English: "Children learn quickly.", Telugu: "పిల్లలు త్వరగా నేర్చుకుంటారు."},
		},
	},
}
