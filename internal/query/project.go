package query

import (
	"strings"
	"unicode"

	"github.com/rogersnm/teamboard/internal/model"
)

const DefaultPerPage = 9

// OwnedBy keeps projects whose owner member is userID.
func OwnedBy(projects []model.Project, userID model.ID) []model.Project {
	out := []model.Project{}
	for _, p := range projects {
		if p.IsOwnedBy(userID) {
			out = append(out, p)
		}
	}
	return out
}

// SearchProjects matches keyword against project names, ignoring case.
func SearchProjects(projects []model.Project, keyword string) []model.Project {
	if keyword == "" {
		return projects
	}
	keyword = strings.ToLower(keyword)
	out := []model.Project{}
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), keyword) {
			out = append(out, p)
		}
	}
	return out
}

type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	TotalPages int
	Total      int
}

// Paginate slices out one page. perPage <= 0 means DefaultPerPage; page is
// clamped to [1, TotalPages]. An empty input has one empty page.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	total := len(items)
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}
	page = max(1, min(page, pages))
	start := min((page-1)*perPage, total)
	end := min(start+perPage, total)
	return Page[T]{
		Items:      append([]T{}, items[start:end]...),
		Page:       page,
		PerPage:    perPage,
		TotalPages: pages,
		Total:      total,
	}
}

type MemberView struct {
	User model.User
	Role string
}

// ResolveMembers pairs each member entry with its user. Entries whose user
// is missing are skipped.
func ResolveMembers(p model.Project, users []model.User) []MemberView {
	out := []MemberView{}
	for _, m := range p.Members {
		for _, u := range users {
			if u.ID == m.UserID {
				out = append(out, MemberView{User: u, Role: m.Role})
				break
			}
		}
	}
	return out
}

// Initials returns up to two uppercase initials for an avatar.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		out = append(out, unicode.ToUpper([]rune(word)[0]))
	}
	if len(out) > 2 {
		out = []rune{out[0], out[len(out)-1]}
	}
	return string(out)
}
