// Package policy holds the keyword and marker lists that drive task
// classification and output evaluation. Lists are plain data: loaded once,
// injected into the components that match against them.
package policy

// DefaultHardKeywords mark tasks that usually need higher tiers.
var DefaultHardKeywords = []string{
	"multi-step",
	"write code",
	"coding",
	"legal",
	"security",
	"financial",
	"long plan",
	"complex",
	"debug",
	"architecture",
	"compliance",
	"privacy",
	"encryption",
	"risk",
}

// DefaultDangerMarkers are phrases whose presence in an output mandates
// escalation regardless of any other signal.
var DefaultDangerMarkers = []string{
	"bomb",
	"make a bomb",
	"credit card number",
	"ssn",
	"steal",
}

// DefaultRefusalMarkers indicate the model declined the task. Diagnostic
// only; refusals do not feed the escalation decision.
var DefaultRefusalMarkers = []string{
	"i can't help",
	"i cannot help",
	"i won't help",
	"cannot assist",
}

// DefaultGoodToneWords raise the tone score.
var DefaultGoodToneWords = []string{
	"happy",
	"glad",
	"thanks",
	"appreciate",
}

// DefaultBadToneWords lower the tone score.
var DefaultBadToneWords = []string{
	"stupid",
	"idiot",
	"shut up",
	"useless",
}

// DefaultVaguePhrases are hedge phrases; two or more matches flag an output
// as vague.
var DefaultVaguePhrases = []string{
	"in conclusion",
	"as an ai",
	"i cannot provide specifics",
	"varies",
	"depends",
}
