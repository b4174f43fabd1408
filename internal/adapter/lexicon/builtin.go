package lexicon

import "perturb/internal/domain"

// Builtin returns a small general-English lexicon so the tool works out
// of the box without an external resource. A real corpus run should
// compile a full lexicon with `perturb compile`.
func Builtin() *MemLexicon {
	lex := &MemLexicon{synsets: make(map[string][]domain.Synset)}
	for word, senses := range builtinSynsets {
		for _, lemmas := range senses {
			lex.add(word, domain.Synset{Lemmas: lemmas})
		}
	}
	return lex
}

// builtinSynsets maps a word to its senses, each sense a lemma list in
// frequency order. Phrases use underscores for internal spaces.
var builtinSynsets = map[string][][]string{
	"movie":   {{"movie", "film", "picture", "moving_picture", "motion_picture"}},
	"film":    {{"film", "movie", "picture"}},
	"really":  {{"really", "genuinely", "truly", "actually"}},
	"great":   {{"great", "outstanding", "excellent", "terrific"}},
	"good":    {{"good", "fine", "decent", "solid"}},
	"bad":     {{"bad", "poor", "awful", "dreadful"}},
	"big":     {{"big", "large", "sizable"}},
	"small":   {{"small", "little", "minor"}},
	"happy":   {{"happy", "glad", "pleased", "content"}},
	"sad":     {{"sad", "unhappy", "sorrowful"}},
	"fast":    {{"fast", "quick", "rapid", "speedy"}},
	"slow":    {{"slow", "sluggish", "leisurely"}},
	"funny":   {{"funny", "amusing", "comical", "humorous"}},
	"boring":  {{"boring", "dull", "tedious", "tiresome"}},
	"scary":   {{"scary", "frightening", "chilling"}},
	"story":   {{"story", "narrative", "tale"}},
	"actor":   {{"actor", "performer", "player"}},
	"scene":   {{"scene", "shot", "sequence"}},
	"start":   {{"start", "begin", "commence"}},
	"end":     {{"end", "finish", "conclusion"}},
	"show":    {{"show", "display", "present"}},
	"watch":   {{"watch", "view", "observe"}},
	"like":    {{"like", "enjoy", "appreciate"}},
	"hate":    {{"hate", "detest", "despise"}},
	"think":   {{"think", "believe", "reckon"}},
	"smart":   {{"smart", "clever", "bright", "intelligent"}},
	"strange": {{"strange", "odd", "peculiar", "unusual"}},
	"old":     {{"old", "aged", "elderly"}, {"old", "former", "previous"}},
	"new":     {{"new", "fresh", "novel"}},
	"pretty":  {{"pretty", "lovely", "attractive"}},
	"ugly":    {{"ugly", "unsightly", "hideous"}},
	"amazing": {{"amazing", "astonishing", "astounding", "stunning"}},
}
