package content

// HomePage is the singleton document behind the landing page. The original
// store kept the transplant stats, care journey items and feature pairs as
// individually numbered columns; they are proper lists here.
type HomePage struct {
	Hero       HomeHero             `json:"hero"`
	Features   HomeFeatures         `json:"features"`
	Transplant TransplantHighlights `json:"transplant"`
	Facility   FacilitySection      `json:"facility"`
	CTA        CallToAction         `json:"cta"`
	Showcase   Showcase             `json:"showcase"`
}

type HomeHero struct {
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	CTAPrimaryText   string `json:"ctaPrimaryText"`
	CTAPrimaryLink   string `json:"ctaPrimaryLink"`
	CTASecondaryText string `json:"ctaSecondaryText"`
	CTASecondaryLink string `json:"ctaSecondaryLink"`
	BackgroundVideo  string `json:"backgroundVideo"`
}

type HomeFeatures struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []FeatureItem `json:"items"`
}

type FeatureItem struct {
	Badge string `json:"badge"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type TransplantHighlights struct {
	Badge            string      `json:"badge"`
	Heading          string      `json:"heading"`
	Description      string      `json:"description"`
	Stats            []StatPair  `json:"stats"`
	CareJourneyTitle string      `json:"careJourneyTitle"`
	CareJourneyItems []string    `json:"careJourneyItems"`
	Features         []TitleDesc `json:"features"`
}

type StatPair struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FacilitySection struct {
	Badge            string `json:"badge"`
	Heading          string `json:"heading"`
	Description      string `json:"description"`
	VideoURL         string `json:"videoUrl"`
	VideoDescription string `json:"videoDescription"`
}

type Showcase struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// SanitizeHome canonicalizes a raw body into a HomePage.
func SanitizeHome(body map[string]any) HomePage {
	if body == nil {
		body = map[string]any{}
	}

	hero := obj(body, "hero")
	page := HomePage{
		Hero: HomeHero{
			Title:            str(hero["title"]),
			Subtitle:         str(hero["subtitle"]),
			CTAPrimaryText:   str(hero["ctaPrimaryText"]),
			CTAPrimaryLink:   str(hero["ctaPrimaryLink"]),
			CTASecondaryText: str(hero["ctaSecondaryText"]),
			CTASecondaryLink: str(hero["ctaSecondaryLink"]),
			BackgroundVideo:  str(hero["backgroundVideo"]),
		},
	}

	features := obj(body, "features")
	page.Features = HomeFeatures{
		Title:    str(features["title"]),
		Subtitle: str(features["subtitle"]),
		Items:    make([]FeatureItem, 0),
	}
	for _, raw := range list(features, "items") {
		item, _ := raw.(map[string]any)
		feature := FeatureItem{
			Badge: str(item["badge"]),
			Title: str(item["title"]),
			Text:  str(item["text"]),
		}
		if anyNonBlank(feature.Badge, feature.Title, feature.Text) {
			page.Features.Items = append(page.Features.Items, feature)
		}
	}

	transplant := obj(body, "transplant")
	page.Transplant = TransplantHighlights{
		Badge:            str(transplant["badge"]),
		Heading:          str(transplant["heading"]),
		Description:      str(transplant["description"]),
		Stats:            make([]StatPair, 0),
		CareJourneyTitle: str(transplant["careJourneyTitle"]),
		CareJourneyItems: stringList(transplant["careJourneyItems"]),
		Features:         make([]TitleDesc, 0),
	}
	for _, raw := range list(transplant, "stats") {
		item, _ := raw.(map[string]any)
		stat := StatPair{Value: str(item["value"]), Label: str(item["label"])}
		if anyNonBlank(stat.Value, stat.Label) {
			page.Transplant.Stats = append(page.Transplant.Stats, stat)
		}
	}
	for _, raw := range list(transplant, "features") {
		item, _ := raw.(map[string]any)
		feature := TitleDesc{Title: str(item["title"]), Description: str(item["description"])}
		if anyNonBlank(feature.Title, feature.Description) {
			page.Transplant.Features = append(page.Transplant.Features, feature)
		}
	}

	facility := obj(body, "facility")
	page.Facility = FacilitySection{
		Badge:            str(facility["badge"]),
		Heading:          str(facility["heading"]),
		Description:      str(facility["description"]),
		VideoURL:         str(facility["videoUrl"]),
		VideoDescription: str(facility["videoDescription"]),
	}

	page.CTA = sanitizeCTA(obj(body, "cta"))

	showcase := obj(body, "showcase")
	page.Showcase = Showcase{
		Title:    str(showcase["title"]),
		Subtitle: str(showcase["subtitle"]),
	}
	return page
}
