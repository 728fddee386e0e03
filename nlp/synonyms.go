package nlp

// synonymTable maps a token to its sense groups. Each inner slice is one
// sense; expansion takes at most two senses and at most two entries per
// sense. Multi-word entries use underscores and are rewritten with spaces
// at expansion time.
var synonymTable = map[string][][]string{
	// People
	"person":    {{"individual", "someone"}, {"human", "soul"}},
	"woman":     {{"lady", "female"}, {"adult_female"}},
	"man":       {{"guy", "gentleman"}, {"adult_male"}},
	"girl":      {{"young_woman", "lass"}, {"daughter"}},
	"boy":       {{"young_man", "lad"}, {"son"}},
	"dancer":    {{"performer", "professional_dancer"}},
	"performer": {{"entertainer", "artist"}},
	"people":    {{"folks", "persons"}, {"crowd"}},
	"child":     {{"kid", "youngster"}},
	"crowd":     {{"throng", "audience"}},

	// Clothing and fashion
	"clothing": {{"apparel", "attire"}, {"garments"}},
	"outfit":   {{"ensemble", "getup"}, {"attire"}},
	"dress":    {{"gown", "frock"}, {"attire"}},
	"shirt":    {{"top", "blouse"}},
	"skirt":    {{"miniskirt"}},
	"pants":    {{"trousers", "slacks"}},
	"jeans":    {{"denim", "blue_jeans"}},
	"jacket":   {{"coat", "blazer"}},
	"sweater":  {{"pullover", "jumper"}},
	"hoodie":   {{"hooded_sweatshirt", "sweatshirt"}},
	"shoes":    {{"footwear", "sneakers"}},
	"hat":      {{"cap", "headwear"}},

	// Colors
	"red":    {{"crimson", "scarlet"}, {"ruby"}},
	"blue":   {{"azure", "navy"}, {"cobalt"}},
	"green":  {{"emerald", "olive"}},
	"black":  {{"dark", "ebony"}},
	"white":  {{"pale", "ivory"}},
	"pink":   {{"rose", "blush"}},
	"purple": {{"violet", "lavender"}},
	"yellow": {{"golden", "amber"}},
	"orange": {{"tangerine"}},
	"gray":   {{"grey", "ashen"}},
	"grey":   {{"gray", "ashen"}},

	// Actions and movement
	"dancing":  {{"dance", "grooving"}, {"swaying"}},
	"dance":    {{"dancing", "grooving"}},
	"moving":   {{"motion", "shifting"}},
	"posing":   {{"modeling", "positioning"}},
	"standing": {{"upright", "erect"}},
	"sitting":  {{"seated", "resting"}},
	"walking":  {{"strolling", "pacing"}},
	"running":  {{"jogging", "sprinting"}},
	"jumping":  {{"leaping", "bouncing"}},
	"spinning": {{"twirling", "rotating"}},
	"twirling": {{"spinning", "whirling"}},
	"playing":  {{"performing"}},
	"singing":  {{"vocalizing", "crooning"}},
	"talking":  {{"speaking", "chatting"}},
	"smiling":  {{"grinning", "beaming"}},
	"laughing": {{"giggling", "chuckling"}},
	"eating":   {{"dining", "feeding"}},
	"cooking":  {{"preparing", "baking"}},
	"driving":  {{"steering", "motoring"}},
	"swimming": {{"bathing", "wading"}},

	// Room and environment
	"room":     {{"chamber", "space"}},
	"bedroom":  {{"sleeping_room", "chamber"}},
	"kitchen":  {{"cookery", "galley"}},
	"house":    {{"home", "dwelling"}, {"residence"}},
	"home":     {{"house", "residence"}},
	"wall":     {{"partition", "surface"}},
	"floor":    {{"ground", "flooring"}},
	"mirror":   {{"looking_glass", "reflector"}},
	"window":   {{"pane", "casement"}},
	"lighting": {{"illumination", "light"}},
	"indoor":   {{"inside", "interior"}},
	"outdoor":  {{"outside", "exterior"}},
	"studio":   {{"workshop", "atelier"}},
	"street":   {{"road", "avenue"}},
	"beach":    {{"shore", "seaside"}},
	"park":     {{"garden", "grounds"}},
	"water":    {{"liquid"}, {"sea"}},
	"sky":      {{"heavens", "air"}},
	"tree":     {{"plant", "sapling"}},
	"car":      {{"automobile", "vehicle"}, {"auto"}},
	"vehicle":  {{"car", "transport"}},
	"table":    {{"desk", "counter"}},
	"chair":    {{"seat", "stool"}},
	"night":    {{"nighttime", "dark"}},
	"morning":  {{"dawn", "daybreak"}},

	// Style and appearance
	"style":   {{"fashion", "manner"}, {"mode"}},
	"fashion": {{"style", "vogue"}},
	"trendy":  {{"fashionable", "stylish"}},
	"casual":  {{"informal", "relaxed"}},
	"formal":  {{"dressy", "ceremonial"}},
	"cute":    {{"adorable", "charming"}},
	"pretty":  {{"beautiful", "lovely"}},
	"elegant": {{"graceful", "refined"}},
	"sporty":  {{"athletic", "active"}},
	"vintage": {{"retro", "classic"}},
	"modern":  {{"contemporary", "current"}},
	"bright":  {{"vivid", "luminous"}},
	"dark":    {{"dim", "shadowy"}},
	"happy":   {{"joyful", "cheerful"}, {"glad"}},
	"sad":     {{"unhappy", "melancholy"}},
	"young":   {{"youthful", "juvenile"}},
	"old":     {{"aged", "elderly"}},
	"big":     {{"large", "huge"}},
	"small":   {{"little", "tiny"}},
	"fast":    {{"quick", "rapid"}},
	"slow":    {{"leisurely", "gradual"}},
}

const (
	maxSensesPerToken  = 2
	maxLemmasPerSense  = 2
	minSynonymLength   = 3
	maxExpandedTokens  = 15
	minExpandableToken = 5
)
