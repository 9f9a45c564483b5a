package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/focalhq/cli/pkg/api"
	"github.com/focalhq/cli/pkg/formatter"
	"github.com/focalhq/cli/pkg/output"
)

// All user-authored text goes through output.Sanitize before it reaches the
// terminal: captions, names and comments are untrusted.

func renderPhotoList(title string, photos []api.Photo) {
	if title != "" {
		fmt.Printf("%s\n\n", formatter.Bold.Sprint(title))
	}

	for _, p := range photos {
		renderPhotoRow(&p)
		fmt.Println()
	}
}

func renderPhotoRow(p *api.Photo) {
	author := p.AuthorUsername
	if author == "" {
		author = p.UserID
	}

	fmt.Printf("%s  %s\n", formatter.Bold.Sprint("@"+output.Sanitize(author)), relativeTime(p.CreatedAt))
	if p.Caption != "" {
		fmt.Printf("  %s\n", output.Sanitize(p.Caption))
	}
	if p.Location != "" {
		fmt.Printf("  📍 %s\n", output.Sanitize(p.Location))
	}
	if len(p.TaggedUsers) > 0 {
		names := make([]string, 0, len(p.TaggedUsers))
		for _, u := range p.TaggedUsers {
			names = append(names, "@"+output.Sanitize(u.Username))
		}
		fmt.Printf("  with %s\n", strings.Join(names, ", "))
	}

	liked := " "
	if p.Liked {
		liked = "♥"
	}
	fmt.Printf("  %s %d likes · %d comments · %s\n", liked, p.LikeCount, p.CommentCount, p.ID)
}

func renderPhotoDetail(p *api.Photo) {
	renderPhotoRow(p)
	fmt.Printf("  %s\n", p.ImageURL)
}

func renderComments(comments []api.Comment) {
	if len(comments) == 0 {
		fmt.Println("No comments yet.")
		return
	}

	fmt.Printf("\n%s\n", formatter.Bold.Sprint("Comments"))
	for _, c := range comments {
		author := c.AuthorUsername
		if author == "" {
			author = c.UserID
		}
		fmt.Printf("  @%s: %s  (%s)\n", output.Sanitize(author), output.Sanitize(c.Text), relativeTime(c.CreatedAt))
	}
}

func renderUserDetail(u *api.User) {
	fmt.Printf("%s (@%s)\n", formatter.Bold.Sprint(output.Sanitize(u.DisplayName)), output.Sanitize(u.Username))
	if u.Bio != "" {
		fmt.Printf("  %s\n", output.Sanitize(u.Bio))
	}
	if u.Location != "" {
		fmt.Printf("  📍 %s\n", output.Sanitize(u.Location))
	}
	fmt.Printf("  %d photos · %d followers · %d following\n", u.PhotoCount, u.FollowerCount, u.FollowingCount)
}

func renderUserList(users []api.User) {
	headers := []string{"Username", "Name", "Photos", "Followers"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			"@" + u.Username,
			u.DisplayName,
			fmt.Sprintf("%d", u.PhotoCount),
			fmt.Sprintf("%d", u.FollowerCount),
		})
	}
	formatter.PrintTable(headers, rows)
}

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
