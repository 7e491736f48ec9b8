package sharing

import "strings"

type AccountAssociation struct {
	Header    string `json:"header"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

type Frame struct {
	Version               string   `json:"version"`
	Name                  string   `json:"name"`
	IconURL               string   `json:"iconUrl"`
	HomeURL               string   `json:"homeUrl"`
	ImageURL              string   `json:"imageUrl"`
	ButtonTitle           string   `json:"buttonTitle"`
	SplashImageURL        string   `json:"splashImageUrl"`
	SplashBackgroundColor string   `json:"splashBackgroundColor"`
	WebhookURL            string   `json:"webhookUrl"`
	Subtitle              string   `json:"subtitle"`
	Description           string   `json:"description"`
	PrimaryCategory       string   `json:"primaryCategory"`
	Tags                  []string `json:"tags"`
	Tagline               string   `json:"tagline"`
	OGTitle               string   `json:"ogTitle"`
	OGDescription         string   `json:"ogDescription"`
	ScreenshotURLs        []string `json:"screenshotUrls"`
	HeroImageURL          string   `json:"heroImageUrl"`
	OGImageURL            string   `json:"ogImageUrl"`
	NoIndex               bool     `json:"noindex"`
}

// Manifest is served at /.well-known/farcaster.json.
type Manifest struct {
	AccountAssociation AccountAssociation `json:"accountAssociation"`
	Frame              Frame              `json:"frame"`
}

// Manifest builds the mini app manifest. Local, tunnel and dev deployments
// get a suffixed name and are not indexed.
func (b *Builder) Manifest(assoc AccountAssociation) Manifest {
	name := "Guess What?"
	noIndex := false
	switch {
	case strings.Contains(b.appURL, "localhost"):
		name += " Local"
		noIndex = true
	case strings.Contains(b.appURL, "ngrok"):
		name += " NGROK"
		noIndex = true
	case strings.Contains(b.appURL, "https://dev."):
		name += " Dev"
		noIndex = true
	}

	feed := b.appURL + "/images/feed.png"
	return Manifest{
		AccountAssociation: assoc,
		Frame: Frame{
			Version:               "1",
			Name:                  name,
			IconURL:               b.appURL + "/images/icon.png",
			HomeURL:               b.appURL,
			ImageURL:              feed,
			ButtonTitle:           "Launch App",
			SplashImageURL:        b.appURL + "/images/splash.png",
			SplashBackgroundColor: "#FFFFFF",
			WebhookURL:            b.appURL + "/api/webhook",
			Subtitle:              "Only for smart people!",
			Description:           "In this game you will need to guess the word in the middle that has something to do with the other two words.",
			PrimaryCategory:       "social",
			Tags:                  []string{"mini-app", "game", "brain", "challenge", "fun"},
			Tagline:               "Guess What? You'll Love It!",
			OGTitle:               name,
			OGDescription:         "You will have fun to guess words and test your brain!",
			ScreenshotURLs:        []string{feed},
			HeroImageURL:          feed,
			OGImageURL:            feed,
			NoIndex:               noIndex,
		},
	}
}
