package structs

// Tables 需要迁移的表
var Tables = []any{
	&Configs{},
	&Documents{},
}
