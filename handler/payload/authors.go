package payload

import "github.com/inkwell/database"

type AuthorResponse struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	AvatarURL  *string `json:"avatar_url"`
	Occupation *string `json:"occupation"`
	Company    *string `json:"company"`
	Email      *string `json:"email"`
	Twitter    *string `json:"twitter"`
	LinkedIn   *string `json:"linkedin"`
	Github     *string `json:"github"`
	Bio        *string `json:"bio"`
}

func GetAuthorResponse(author database.Author) AuthorResponse {
	return AuthorResponse{
		ID:         author.ID,
		Name:       author.Name,
		Slug:       author.Slug,
		AvatarURL:  author.AvatarURL,
		Occupation: author.Occupation,
		Company:    author.Company,
		Email:      author.Email,
		Twitter:    author.Twitter,
		LinkedIn:   author.LinkedIn,
		Github:     author.Github,
		Bio:        author.Bio,
	}
}

func GetAuthorsResponse(authors []database.Author) []AuthorResponse {
	data := make([]AuthorResponse, 0, len(authors))

	for _, author := range authors {
		data = append(data, GetAuthorResponse(author))
	}

	return data
}
