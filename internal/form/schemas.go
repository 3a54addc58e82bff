package form

import (
	"strconv"

	"github.com/Kirill2434/yatube/internal/domain"
)

// PostSchema is the create/edit post form. groups supplies the valid choices
// for the optional group field.
func PostSchema(groups []domain.Group, maxImageBytes int64) Schema {
	choices := make([]Choice, 0, len(groups)+1)
	choices = append(choices, Choice{Value: "", Label: "---------"})
	for _, g := range groups {
		choices = append(choices, Choice{Value: strconv.FormatInt(g.ID, 10), Label: g.Title})
	}
	return Schema{Fields: []Field{
		{
			Name:     "text",
			Label:    "Текст поста",
			HelpText: "Текст нового поста",
			Kind:     KindTextarea,
			Required: true,
		},
		{
			Name:     "group",
			Label:    "Группа",
			HelpText: "Группа, к которой будет относиться пост",
			Kind:     KindChoice,
			Choices:  choices,
		},
		{
			Name:     "image",
			Label:    "Картинка",
			Kind:     KindImage,
			MaxBytes: maxImageBytes,
		},
	}}
}

// PostInitial returns the values an edit form starts with.
func PostInitial(p *domain.Post) map[string]string {
	initial := map[string]string{"text": p.Text}
	if p.GroupID != nil {
		initial["group"] = strconv.FormatInt(*p.GroupID, 10)
	}
	return initial
}

// GroupID returns the selected group of a valid post form, or nil for none.
func GroupID(f *Form) *int64 {
	raw := f.Value("group")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// CommentSchema is the add-comment form.
func CommentSchema() Schema {
	return Schema{Fields: []Field{
		{
			Name:     "text",
			Label:    "Текст комментария",
			Kind:     KindTextarea,
			Required: true,
		},
	}}
}

// SignupSchema is the registration form. The two passwords must match.
func SignupSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "first_name", Label: "Имя", Kind: KindText, MaxLength: 150},
			{Name: "last_name", Label: "Фамилия", Kind: KindText, MaxLength: 150},
			{Name: "username", Label: "Имя пользователя", Kind: KindText, Required: true, MaxLength: 150},
			{Name: "email", Label: "Адрес электронной почты", Kind: KindEmail, MaxLength: 254},
			{Name: "password1", Label: "Пароль", Kind: KindPassword, Required: true},
			{Name: "password2", Label: "Подтверждение пароля", Kind: KindPassword, Required: true},
		},
		Clean: func(f *Form) {
			p1, p2 := f.Value("password1"), f.Value("password2")
			if p1 != "" && p2 != "" && p1 != p2 {
				f.AddError("password2", "The two password fields didn’t match.")
			}
		},
	}
}

// LoginSchema is the sign-in form.
func LoginSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "username", Label: "Имя пользователя", Kind: KindText, Required: true, MaxLength: 150},
		{Name: "password", Label: "Пароль", Kind: KindPassword, Required: true},
	}}
}
