package handlers

type BlogRequest struct {
	TitleEn       string `json:"titleEn"`
	TitleNp       string `json:"titleNp"`
	Slug          string `json:"slug"`
	ContentEn     string `json:"contentEn"`
	ContentNp     string `json:"contentNp"`
	ExcerptEn     string `json:"excerptEn"`
	ExcerptNp     string `json:"excerptNp"`
	FeaturedImage string `json:"featuredImage"`
	Published     bool   `json:"published"`
}

type BlogUpdateRequest struct {
	TitleEn       *string `json:"titleEn"`
	TitleNp       *string `json:"titleNp"`
	Slug          *string `json:"slug"`
	ContentEn     *string `json:"contentEn"`
	ContentNp     *string `json:"contentNp"`
	ExcerptEn     *string `json:"excerptEn"`
	ExcerptNp     *string `json:"excerptNp"`
	FeaturedImage *string `json:"featuredImage"`
	Published     *bool   `json:"published"`
}
