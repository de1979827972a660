package filter

var UserSchema = Schema{
	Text: []TextField{
		{Params: []string{"user_name", "userName"}, Column: "user_name"},
		{Params: []string{"email"}, Column: "email"},
	},
	Sort: map[string]string{
		"id":         "id",
		"user_name":  "user_name",
		"userName":   "user_name",
		"email":      "email",
		"createdAt":  "created_at",
		"created_at": "created_at",
		"updatedAt":  "updated_at",
		"updated_at": "updated_at",
	},
}

var PhotoSchema = Schema{
	Text: []TextField{
		{Params: []string{"title"}, Column: "title"},
		{Params: []string{"category"}, Column: "category"},
	},
	Sort: map[string]string{
		"id":         "id",
		"title":      "title",
		"category":   "category",
		"createdAt":  "created_at",
		"created_at": "created_at",
		"updatedAt":  "updated_at",
		"updated_at": "updated_at",
	},
}
