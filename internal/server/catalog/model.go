package catalog

// Item is one row of the music table, keyed by (title, year). ImgURL may
// reference an externally hosted cover image or be empty.
type Item struct {
	Title  string `dynamodbav:"title" json:"title"`
	Year   string `dynamodbav:"year" json:"year"`
	Artist string `dynamodbav:"artist" json:"artist"`
	Album  string `dynamodbav:"album" json:"album"`
	ImgURL string `dynamodbav:"img_url,omitempty" json:"img_url,omitempty"`
}
