package nlp

// visualTerms is the domain vocabulary that qualifies a caption token for
// synonym expansion even when it is short. Tokens outside the vocabulary are
// only expanded when longer than four characters.
var visualTerms = map[string]struct{}{}

func init() {
	for _, term := range []string{
		// People
		"person", "woman", "man", "girl", "boy", "female", "male", "dancer", "performer",
		// Clothing and fashion
		"clothing", "outfit", "dress", "shirt", "top", "blouse", "skirt", "pants", "jeans",
		"shorts", "leggings", "hoodie", "jacket", "sweater", "tank", "crop", "mini", "maxi",
		"swimwear", "bodysuit",
		// Colors
		"color", "red", "blue", "green", "black", "white", "pink", "purple", "yellow",
		"orange", "brown", "gray", "grey", "silver", "gold", "navy", "maroon",
		// Actions and movement
		"dancing", "dance", "moving", "posing", "standing", "sitting", "walking", "jumping",
		"spinning", "twirling", "gesture", "motion", "performance",
		// Room and environment
		"room", "bedroom", "living", "background", "wall", "floor", "mirror", "window",
		"lighting", "indoor", "home", "studio", "space",
		// Style and appearance
		"style", "fashion", "trendy", "casual", "formal", "cute", "pretty", "elegant",
		"sporty", "vintage", "modern", "chic",
	} {
		visualTerms[term] = struct{}{}
	}
}

// IsVisualTerm reports whether the token belongs to the domain vocabulary.
func IsVisualTerm(token string) bool {
	_, ok := visualTerms[token]
	return ok
}
