package dto

import "testing"

func TestYouTubeLinkValidation(t *testing.T) {
	type linkCase struct {
		link  string
		valid bool
	}

	cases := []linkCase{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"http://youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"//www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", true},
		{"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", true},
		{"HTTPS://WWW.YOUTUBE.COM/WATCH?V=DQW4W9WGXCQ", true},

		{"", false},
		{"not a link", false},
		{"https://example.com/watch?v=dQw4w9WgXcQ", false},
		{"https://vimeo.com/123456", false},
		{"ftp://youtube.com/watch?v=dQw4w9WgXcQ", false},
	}

	for _, tc := range cases {
		got := youtubeLinkRegex.MatchString(tc.link)
		if got != tc.valid {
			t.Errorf("link %q: expected valid=%v, got %v", tc.link, tc.valid, got)
		}
	}
}

func TestCreateLevelRequestValidation(t *testing.T) {
	valid := CreateLevelRequestRequest{
		LevelID:          1,
		YouTubeVideoLink: "https://youtu.be/dQw4w9WgXcQ",
		DiscordUserID:    2,
		RequestRating:    "seven",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	badRating := valid
	badRating.RequestRating = "eleven"
	if err := badRating.Validate(); err == nil {
		t.Fatal("expected invalid rating to fail validation")
	}

	missing := valid
	missing.YouTubeVideoLink = ""
	if err := missing.Validate(); err == nil {
		t.Fatal("expected missing link to fail validation")
	}

	badLink := valid
	badLink.YouTubeVideoLink = "https://vimeo.com/123456"
	if err := badLink.Validate(); err == nil {
		t.Fatal("expected non-youtube link to fail validation")
	}
}

func TestUpdateLevelRequestLinkValidation(t *testing.T) {
	goodLink := "https://youtu.be/dQw4w9WgXcQ"
	req := UpdateLevelRequestRequest{LevelID: 1, YouTubeVideoLink: &goodLink}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid link rejected: %v", err)
	}

	badLink := "https://example.com/watch?v=abc"
	req.YouTubeVideoLink = &badLink
	if err := req.Validate(); err == nil {
		t.Fatal("expected malformed link to fail validation")
	}

	// Absent link stays optional.
	req.YouTubeVideoLink = nil
	if err := req.Validate(); err != nil {
		t.Fatalf("absent link rejected: %v", err)
	}
}

func TestSendLevelRequestValidation(t *testing.T) {
	valid := SendLevelRequest{
		LevelID:         1,
		SuggestedRating: "epic",
		SuggestedScore:  "ten",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	noRate := valid
	noRate.SuggestedScore = "no_rate"
	if err := noRate.Validate(); err != nil {
		t.Fatalf("no_rate score rejected: %v", err)
	}

	badScore := valid
	badScore.SuggestedScore = "twelve"
	if err := badScore.Validate(); err == nil {
		t.Fatal("expected invalid score to fail validation")
	}

	badRating := valid
	badRating.SuggestedRating = "shiny"
	if err := badRating.Validate(); err == nil {
		t.Fatal("expected invalid rating to fail validation")
	}
}

func TestValidationErrorFormatting(t *testing.T) {
	req := CreateLevelRequestRequest{}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}

	resp := CreateValidationErrorResponse(err)
	if resp.Code != 400 {
		t.Fatalf("expected code 400, got %d", resp.Code)
	}
	if len(resp.Errors) == 0 {
		t.Fatal("expected field errors")
	}
}
