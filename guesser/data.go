package guesser

// modelTable maps script -> language -> trigram model. Each model is an
// ordered list of the language's most frequent trigrams in a representative
// corpus, most frequent first (position = rank). Scripts absent from this
// table map one-to-one to a language and are resolved without models.
//
// The lists use the same normalization as the extractor: lowercase, marks
// stripped, words padded with spaces.
var modelTable = map[string]map[string][]string{
	"Latin": {
		"eng": {
			" th", "the", "he ", "ed ", " to", " in", "er ", "ing",
			"ng ", " an", "nd ", " of", "and", "to ", "of ", " co",
			"at ", "on ", "in ", " a ", "ent", " is", "is ", "re ",
			"tio", " re", "ion", " be", "e t", "e a", "as ", "his",
			" he", "th ", "t t", " pr", "es ", "ter", " wh", "hat",
			"tha", "her", "ere", " ha", "e s", "en ", " wa", "was",
			"all", " al", "or ", " fo", "for", "ati", " it", "it ",
			"ve ", " wi", "wit", "ith", "ver", " on", "ll ", "te ",
			"ns ", " ar", "are", "st ", "nt ", " no", "not", "ld ",
			"se ", "d t", "men", " as", "hin", " do", "e i", "e o",
			"ear", "s t", "e w", " we", "ly ", "eve", " ev", "s a",
			"a s", " sa", "nce", "enc", "e c", "t o", "con", "one",
			"ne ", "ted", "you", " yo", "n t", "ose", "ave", "hav",
			"out", "ut ", "our", " ou", "d a", "ess", "ome", " so",
			"ers", "ily", "abo", "uld", "oul", " wo", "rit", "wri",
			" wr", "can", " ca", "had", "e h", "but", " bu", "ten",
			"sen", " se", "fro", "rom", "om ", " fr", "s i", "thi",
			"ine", "ni ", "n i", "whi", "ich", "ime", "ide", "ses",
			"n e", " en", "ust", " us", "use", "s o", "ove", "nte",
			"int", "hen", "whe", "ked", "ake", "ce ", "any", "n a",
			"ny ", "ry ", "ery", " da", "day", "ay ", " li", "lik",
			"ike", "ke ", "ite", "o w", " i ", "wor", "ord", "rd ",
			"end", "ard", "ian", "ple", "le ", "mpl", "amp", "sam",
			"abl", "ble", "igh", "ght", "ht ", "ish", "lis", "sh ",
			"itt", "tte", "lan", "gua", "age", "eng", "ngl", "gli",
		},
		"spa": {
			" de", "de ", " la", "la ", "os ", " y ", " el", "el ",
			"es ", " es", " en", "en ", "as ", " co", "ue ", " qu",
			"que", "ar ", "on ", "ion", " se", " un", "un ", "cio",
			"aci", "ent", "nte", "do ", "ado", " a ", "er ", "con",
			"sta", "est", "ta ", "ble", "ra ", " po", "por", "or ",
			"los", " lo", "las", "del", " su", "su ", "al ", " al",
			"nto", "to ", " no", "no ", "una", "na ", "ada", "res",
			"ia ", "e l", "a d", "o d", "a l", "n d", "e e", "e a",
			"ara", " pa", "par", "s d", "men", "dad", "ida", "mie",
			"ien", "te ", " te", "pro", " pr", "tra", " tr", "nci",
			"enc", "a e", "a c", "e d", "e s", "o e", "o c", "n e",
			"ero", "era", "ant", "and", "nda", "com", "o s", "s e",
			"les", "n l", "ndo", "ier", "cia", "io ", "ca ", "ce ",
			"s u", " mu", "muy", "uy ", " ma", "mas", " mi", " or",
			"ora", "rac", "oci", "s p", "e c", "e p", "o p", "n c",
			"per", "ual", " cu", "tod", "odo", "ica", "ist", "ade",
			"emp", "mpl", "plo", "lo ", "gra", "esp", "spa", "pan",
			"ano", "nol", "ol ", "ese", "eso", "ell", "lla", "llo",
		},
		"fra": {
			" de", "de ", "es ", " le", "le ", "ent", "e d", " la",
			"la ", "et ", " et", "ion", "nt ", "on ", "ne ", " pa",
			"re ", " co", "e l", "e p", " pr", "ur ", "ndr", "les",
			"s e", "s d", "tio", "ati", "con", "que", " qu", "ue ",
			"par", " po", "pou", "our", "r l", " re", "men", "ant",
			"eur", " un", "un ", "une", "ans", "dan", " da", "ns ",
			" en", "en ", "ait", "te ", " se", "s l", "e c", "e s",
			"e a", "a p", "nte", "tre", " tr", "ett", "tte", "ces",
			" ce", "ce ", "cet", "est", " es", "st ", " il", "il ",
			"ils", " so", "son", "ont", "du ", " du", "au ", " au",
			"aux", "ux ", "ous", "us ", " vo", "vou", " no", "nos",
			"ire", " di", "dit", "ui ", "qui", "oi ", " su", "sur",
			"pas", "as ", "plu", "lus", " pl", "tou", "out", "omm",
			"mme", "com", "ele", "ell", "lle", "ais", "ise", "ort",
			"ete", "e e", "iqu", "nce", "enc", "air", "ier", "ran",
		},
		"por": {
			" de", "de ", " a ", "os ", " e ", " o ", "do ", " do",
			"da ", " da", "ao ", "que", " qu", "ue ", "o d", "a d",
			"ent", "nte", "es ", " es", " co", "com", "ara", " pa",
			"par", "ra ", " se", "se ", "er ", " pr", "pro", "as ",
			" as", " os", "men", " um", "um ", "uma", "ma ", " na",
			"na ", " no", "no ", "ada", "ado", "cao", " po", "por",
			"or ", "nto", "to ", "em ", " em", "ndo", "res", "sta",
			"est", "tem", " te", "te ", "ess", "e a", "e d", "e e",
			"e o", "e s", "o a", "o c", "o e", "o p", "o s", "a a",
			"a c", "a e", "a p", "s a", "s d", "s e", "s o", "dos",
			" di", "dia", "ias", "ia ", " eu", "eu ", "sto", "ost",
			" to", "tod", "odo", "ver", "eve", "cre", "scr", "esc",
			"rev", "igo", "go ", "nos", "ais", "is ", "mos", "ram",
			"nha", "lho", "car", "oes", "sso", "iss", "ito", "nao",
			" va", "vel", "mai", "ai ", "sao", "tra", " tr", "aca",
		},
		"deu": {
			" de", "der", "er ", "en ", "ie ", " di", "die", "nd ",
			" un", "und", "ung", "ng ", "ch ", "ein", " ei", "ine",
			"ne ", "in ", " in", "che", " ge", "gen", "ten", "sch",
			" sc", "cht", "ht ", "ich", " ni", "nic", "das", " da",
			"as ", "den", " be", "ber", "ver", " ve", "te ", " zu",
			"zu ", "mit", " mi", "it ", "auf", " au", "aus", "us ",
			" an", "an ", "ste", " st", "sse", "ess", "ens", "nde",
			"ere", "run", "eit", "hen", " ha", "hat", "lic", "ig ",
			"sie", " si", "sin", "ist", " is", "st ", " er", "es ",
			" es", "wir", " wi", "ird", "rd ", "wer", " we", "nen",
			"sei", "ach", " na", "nac", "bei", "von", " vo", "vor",
			"on ", "ben", "and", "ndi", "dur", "urc", "rch", " du",
			"ehr", "meh", " me", "ner", "ges", "hre", "ter", "ren",
			"ige", "uch", " no", "noc", "och", "ur ", "nur", "man",
		},
		"ita": {
			" di", "di ", " e ", " il", "il ", "la ", " la", "to ",
			"re ", "che", " ch", "he ", " co", "con", "on ", "one",
			"ion", "zio", "azi", "ent", "nte", "e d", "a d", "o d",
			" de", "del", "ell", "lla", "lle", "ere", " pe", "per",
			"er ", " un", "un ", "una", "na ", "ato", " in", "in ",
			"ale", " al", "all", "gli", " gl", "li ", "ne ", " ne",
			"nel", "e s", " si", "si ", " so", "son", "ono", "no ",
			"e i", "i d", "ti ", "sta", " st", "men", "ant", "are",
			" qu", "que", "ues", "est", "ta ", "ita", "pro", " pr",
			"e p", "e c", "o c", "o s", "i s", "a p", "a c", "nno",
			"ann", "non", " no", "com", "ome", "a s", "e a", "ia ",
			"lo ", "ani", "i p", "i c", "ra ", "tra", " tr", "att",
			"tto", "tta", "ess", "sso", "anc", "nch", "ro ", "ori",
			"ssi", "nti", "tti", "gio", "ggi", "piu", " pi", "iu ",
		},
		"nld": {
			" de", "de ", "en ", " en", " he", "het", "et ", " va",
			"van", "an ", " ee", "een", "n d", " ge", "gen", " be",
			"ver", " ve", "er ", " in", "in ", "nde", "den", "der",
			"ng ", "ing", " da", "dat", "at ", "aar", " aa", "aan",
			" op", "op ", " te", "te ", "ijk", "ij ", " zi", "zij",
			"ijn", "jn ", " me", "met", "oor", " vo", "voo", "or ",
			" ni", "nie", "iet", "sch", "cht", "ch ", " we", "wer",
			"erd", "rd ", "ord", "wor", " wo", "ook", " oo", "ok ",
			" al", "als", "ls ", " ma", "maa", "ar ", " bi", "bij",
			"eli", "lij", " on", "ond", "nd ", " ov", "ove", "r d",
			"t d", "n e", "e v", "e o", "e m", "n v", "n h", "t h",
			"ze ", " ze", "dit", " di", "dez", "eze", "hij", " hi",
			"eer", "ere", "ert", "pen", "len", "ele", "rde", "n o",
			"ien", "die", "ke ", "jke", "aat", "aal", "nen", "ten",
		},
	},
	"Cyrillic": {
		"rus": {
			" и ", " в ", " не", "не ", " на", "на ", " по", "по ",
			" то", "то ", "го ", " но", "но ", "ть ", "ого", "его",
			" пр", "про", "при", "ени", "ние", "ия ", " ко", "что",
			" чт", "ост", "ст ", "ста", " ст", "сть", "ать", "ет ",
			"ит ", " за", "за ", " от", "от ", "ой ", " ка", "как",
			"ак ", " ра", "ов ", "ово", " эт", "это", " бы", "был",
			"ыло", "ло ", " вс", "все", " св", " де", "дел", "для",
			" дл", "ля ", "ому", "ых ", "ере", "тер", "инт", " ин",
			"льк", "тол", "оль", "ько", "ко ", " хо", "хор", "оро",
			"рош", "ошо", "шо ", " оч", "оче", "чен", "ень", "нь ",
			"ами", "ся ", "тся", "ует", "ран", " об", "об ", " ре",
			"рес", "есн", "сно", "ель", "ине", "ани", "ате", "ции",
			" са", "сам", "ый ", "ие ", "ми ", "ном", "ним", "они",
			" он", "он ", "мы ", " мы", "нас", "ас ", "сех", "ех ",
			"ал ", "ала", "али", "тор", "вер", "пер", " пе", "ров",
		},
		"ukr": {
			" і ", " в ", " на", "на ", " не", "не ", " за", "за ",
			"ть ", "ого", "ння", "ня ", " по", "по ", " що", "що ",
			" до", "до ", " ві", "від", " пр", "про", "ри ", " та",
			"та ", " як", "як ", "ів ", " з ", " у ", "ому", "ост",
			"сті", "ті ", " ук", "укр", "кра", "раї", "аїн", "їни",
			"ни ", " це", "це ", "ати", "ти ", "енн", "ні ", "іль",
			"ше ", "ий ", " ви", "ся ", "ься", "єть", "ють", "ною",
			"анн", " мо", "мож", "оже", "же ", " бу", "бул", "ула",
			" св", "сво", "вої", "їх ", " їх", " ми", "ми ", " пе",
			"пер", "ере", "ред", "ова", "ват", "льн", "ьно", "но ",
			"ень", "нь ", "ист", "она", "вон", " во", "ким", "ими",
			"их ", "ах ", "ами", "ува", "іст", " об", "об ", "ей ",
		},
		"bul": {
			" на", "на ", " и ", " в ", "то ", " да", "да ", " се",
			"се ", " е ", "те ", " за", "за ", "ата", " пр", "при",
			"про", "ите", "ия ", " не", "не ", "ни ", " по", "по ",
			"ва ", " съ", "ът ", " ко", "ато", " ка", "как", "че ",
			" че", " то", "тов", "ова", " с ", "ени", "ние", "ане",
			" до", "до ", " от", "от ", " ще", "ще ", " си", "си ",
			" му", "му ", " го", "го ", " ми", "ми ", " ли", "ли ",
			" ед", "еди", "дин", "ин ", "ест", "ред", "ран", "ово",
			"ият", "ят ", "алн", "лно", "кат", "еше", "ани", "тел",
			"ст ", "ста", "ски", "ки ", "ари", "ето", "о н", "о с",
		},
	},
}
