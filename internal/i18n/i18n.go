package i18n

// Language identifies one of the supported interface languages.
type Language string

const (
	English Language = "en"
	Urdu    Language = "ur"
	Punjabi Language = "pa"
)

// Parse maps a language tag to a supported Language, falling back to English.
func Parse(tag string) Language {
	switch Language(tag) {
	case Urdu:
		return Urdu
	case Punjabi:
		return Punjabi
	default:
		return English
	}
}

// Languages lists the supported languages in display order.
func Languages() []Language {
	return []Language{English, Urdu, Punjabi}
}

// Valid reports whether the tag names a supported language.
func Valid(tag string) bool {
	switch Language(tag) {
	case English, Urdu, Punjabi:
		return true
	}
	return false
}

// RTL reports whether the language renders right-to-left.
func (l Language) RTL() bool {
	return l == Urdu || l == Punjabi
}

// Strings holds every localized label the client renders. The set of keys
// is closed; lookups never construct keys dynamically.
type Strings struct {
	Welcome              string `json:"welcome"`
	Subtitle             string `json:"subtitle"`
	AskAnything          string `json:"ask_anything"`
	TabChat              string `json:"tab_chat"`
	TabDiagnostic        string `json:"tab_diagnostic"`
	TabMarket            string `json:"tab_market"`
	TabOffline           string `json:"tab_offline"`
	UploadLabel          string `json:"upload_label"`
	Analyzing            string `json:"analyzing"`
	Send                 string `json:"send"`
	DiseaseDetected      string `json:"disease_detected"`
	Treatment            string `json:"treatment"`
	Prevention           string `json:"prevention"`
	Confidence           string `json:"confidence"`
	LanguageLabel        string `json:"language_label"`
	OfflineMode          string `json:"offline_mode"`
	OnlineMode           string `json:"online_mode"`
	Download             string `json:"download"`
	View                 string `json:"view"`
	Downloaded           string `json:"downloaded"`
	OfflineDiagnosticTit string `json:"offline_diagnostic_title"`
	OfflineDiagnosticDes string `json:"offline_diagnostic_desc"`
	SelectCrop           string `json:"select_crop"`
	SelectSymptom        string `json:"select_symptom"`
	PossibleCause        string `json:"possible_cause"`
	ImmediateAction      string `json:"immediate_action"`
	ConnectInternet      string `json:"connect_internet"`
	WeatherForecast      string `json:"weather_forecast"`
	Humidity             string `json:"humidity"`
	Wind                 string `json:"wind"`
	Today                string `json:"today"`
	Tomorrow             string `json:"tomorrow"`
	Yesterday            string `json:"yesterday"`
	ConditionSunny       string `json:"condition_sunny"`
	ConditionPartCloudy  string `json:"condition_partly_cloudy"`
	ConditionCloudy      string `json:"condition_cloudy"`
	ConditionRain        string `json:"condition_rain"`
	ConditionStorm       string `json:"condition_storm"`
	NewChat              string `json:"new_chat"`
	ChatHistory          string `json:"chat_history"`
	NoHistory            string `json:"no_history"`
	DeleteChat           string `json:"delete_chat"`
}

// T returns the string table for the language, defaulting to English for
// anything outside the supported set.
func T(lang Language) Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[English]
}

var tables = map[Language]Strings{
	English: {
		Welcome:              "Welcome to Kissan Dost",
		Subtitle:             "Your AI Agriculture Expert",
		AskAnything:          "Ask me about crops, diseases, or prices...",
		TabChat:              "AI Advisor",
		TabDiagnostic:        "Crop Doctor",
		TabMarket:            "Mandi Rates",
		TabOffline:           "Offline Guides",
		UploadLabel:          "Upload Crop Photo",
		Analyzing:            "Analyzing Crop Health...",
		Send:                 "Send",
		DiseaseDetected:      "Diagnosis Report",
		Treatment:            "Treatment Plan",
		Prevention:           "Prevention",
		Confidence:           "AI Confidence",
		LanguageLabel:        "Language / زبان",
		OfflineMode:          "Offline Mode",
		OnlineMode:           "Online",
		Download:             "Download",
		View:                 "View",
		Downloaded:           "Downloaded",
		OfflineDiagnosticTit: "Offline Symptom Checker",
		OfflineDiagnosticDes: "Internet unavailable. Use this tool for preliminary advice.",
		SelectCrop:           "Select Crop",
		SelectSymptom:        "Select Symptom",
		PossibleCause:        "Possible Cause",
		ImmediateAction:      "Immediate Action",
		ConnectInternet:      "Connect to internet for full AI analysis",
		WeatherForecast:      "5-Day Weather Forecast",
		Humidity:             "Humidity",
		Wind:                 "Wind",
		Today:                "Today",
		Tomorrow:             "Tomorrow",
		Yesterday:            "Yesterday",
		ConditionSunny:       "Sunny",
		ConditionPartCloudy:  "Partly Cloudy",
		ConditionCloudy:      "Cloudy",
		ConditionRain:        "Rain",
		ConditionStorm:       "Storm",
		NewChat:              "New Chat",
		ChatHistory:          "Chat History",
		NoHistory:            "No previous chats",
		DeleteChat:           "Delete",
	},
	Urdu: {
		Welcome:              "کسان دوست میں خوش آمدید",
		Subtitle:             "آپ کا زرعی مصنوعی ذہانت کا ماہر",
		AskAnything:          "مجھ سے فصلوں، بیماریوں یا قیمتوں کے بارے میں پوچھیں...",
		TabChat:              "مشیر",
		TabDiagnostic:        "فصل ڈاکٹر",
		TabMarket:            "منڈی کے بھاؤ",
		TabOffline:           "آف لائن گائیڈز",
		UploadLabel:          "فصل کی تصویر اپ لوڈ کریں",
		Analyzing:            "فصل کی صحت کا تجزیہ کیا جا رہا ہے...",
		Send:                 "بھیجیں",
		DiseaseDetected:      "تشخیص کی رپورٹ",
		Treatment:            "علاج کا منصوبہ",
		Prevention:           "احتیاطی تدابیر",
		Confidence:           "AI اعتماد",
		LanguageLabel:        "زبان",
		OfflineMode:          "آف لائن موڈ",
		OnlineMode:           "آن لائن",
		Download:             "ڈاؤن لوڈ کریں",
		View:                 "دیکھیں",
		Downloaded:           "محفوظ شدہ",
		OfflineDiagnosticTit: "آف لائن علامات چیکر",
		OfflineDiagnosticDes: "انٹرنیٹ دستیاب نہیں۔ ابتدائی مشورے کے لیے یہ آلہ استعمال کریں۔",
		SelectCrop:           "فصل منتخب کریں",
		SelectSymptom:        "علامت منتخب کریں",
		PossibleCause:        "ممکنہ وجہ",
		ImmediateAction:      "فوری عمل",
		ConnectInternet:      "مکمل AI تجزیہ کے لیے انٹرنیٹ سے منسلک ہوں",
		WeatherForecast:      "5 دن کی موسم کی پیشن گوئی",
		Humidity:             "نمی",
		Wind:                 "ہوا",
		Today:                "آج",
		Tomorrow:             "کل",
		Yesterday:            "کل",
		ConditionSunny:       "دھوپ",
		ConditionPartCloudy:  "جزوی بادل",
		ConditionCloudy:      "بادل",
		ConditionRain:        "بارش",
		ConditionStorm:       "طوفان",
		NewChat:              "نئی بات چیت",
		ChatHistory:          "پرانی بات چیت",
		NoHistory:            "کوئی پرانی بات چیت نہیں",
		DeleteChat:           "ختم کریں",
	},
	Punjabi: {
		Welcome:              "کسان دوست وچ جی آیاں نوں",
		Subtitle:             "تہاڈا زرعی ماہر",
		AskAnything:          "میرے کولوں فصلاں، بیماریاں یا ریٹ پوچھو...",
		TabChat:              "صلاح کار",
		TabDiagnostic:        "فصل ڈاکٹر",
		TabMarket:            "منڈی دے ریٹ",
		TabOffline:           "آف لائن گائیڈز",
		UploadLabel:          "فصل دی فوٹو لاؤ",
		Analyzing:            "فصل دی جانچ پڑتال ہو رہی اے...",
		Send:                 "کلّو",
		DiseaseDetected:      "بیماری دی رپورٹ",
		Treatment:            "علاج",
		Prevention:           "بچاؤ",
		Confidence:           "یقین دہانی",
		LanguageLabel:        "بولی",
		OfflineMode:          "آف لائن موڈ",
		OnlineMode:           "آن لائن",
		Download:             "ڈاؤن لوڈ کرو",
		View:                 "ویکھو",
		Downloaded:           "محفوظ",
		OfflineDiagnosticTit: "آف لائن علامات چیکر",
		OfflineDiagnosticDes: "نیٹ نئیں چل ریا۔ ابتدائی مشورے لئی اے ورتو۔",
		SelectCrop:           "فصل چنو",
		SelectSymptom:        "علامت چنو",
		PossibleCause:        "وجہ",
		ImmediateAction:      "فوری عمل",
		ConnectInternet:      "پوری جانچ لئی انٹرنیٹ چلاؤ",
		WeatherForecast:      "5 دناں دا موسم",
		Humidity:             "نمی",
		Wind:                 "ہوا",
		Today:                "اج",
		Tomorrow:             "کل",
		Yesterday:            "کل",
		ConditionSunny:       "دھپ",
		ConditionPartCloudy:  "تھوڑے بادل",
		ConditionCloudy:      "بادل",
		ConditionRain:        "مینھ",
		ConditionStorm:       "طوفان",
		NewChat:              "نوی گل بات",
		ChatHistory:          "پرانی گلاں",
		NoHistory:            "کوئی پرانی گل نہیں",
		DeleteChat:           "مٹاؤ",
	},
}

// Name returns the English name of the language, used when instructing
// the model which language to answer in.
func (l Language) Name() string {
	switch l {
	case Urdu:
		return "Urdu"
	case Punjabi:
		return "Punjabi"
	default:
		return "English"
	}
}
