package loam

// SceneMetadata represents the frontmatter of a scene document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type SceneMetadata struct {
	ID    string `json:"id" mapstructure:"id"`
	Title string `json:"title" mapstructure:"title"`

	// Image is the illustration seed. "image_seed" is accepted as an alias.
	Image     string `json:"image" mapstructure:"image"`
	ImageSeed string `json:"image_seed" mapstructure:"image_seed"`

	Choices []SceneChoice `json:"choices" mapstructure:"choices"`

	// To is sugar for a single unlabelled choice (a linear scene).
	To string `json:"to" mapstructure:"to"`

	Ending     bool   `json:"ending" mapstructure:"ending"`
	EndingType string `json:"ending_type" mapstructure:"ending_type"`
	Message    string `json:"message" mapstructure:"message"`
}

// SceneChoice is one entry of the "choices" list.
type SceneChoice struct {
	Text   string `json:"text" mapstructure:"text"`
	To     string `json:"to" mapstructure:"to"`
	Target string `json:"target" mapstructure:"target"`
}
