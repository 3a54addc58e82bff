package postgres

import "github.com/Masterminds/squirrel"

// Builder is the squirrel statement builder with PostgreSQL $n placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
