package ai

// CaptionPrompts are the targeted questions asked per frame in addition to
// the unconditioned caption. Answers are filtered for degenerate responses
// and concatenated with CaptionSeparator.
var CaptionPrompts = []string{
	"What is the person wearing?",
	"What colors are prominent in this image?",
	"What activity is happening?",
	"What objects are visible?",
	"What is in the background?",
}

// DegenerateAnswers are caption-prompt responses that carry no information
// and are discarded.
var DegenerateAnswers = map[string]bool{
	"yes":     true,
	"no":      true,
	"maybe":   true,
	"unknown": true,
	"none":    true,
}

// PlaceholderCaption is used when no usable caption fragment was produced,
// so downstream text embedding never receives an empty string.
const PlaceholderCaption = "video frame content"

// CaptionSeparator joins retained caption fragments.
const CaptionSeparator = " | "

// MoodLabels are the valid sparse emotion labels. The mood analyzer must
// return one of these or an empty string.
var MoodLabels = []string{
	"angry",
	"disgust",
	"fear",
	"happy",
	"neutral",
	"sad",
	"surprise",
}
