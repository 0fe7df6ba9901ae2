package language

var builtin = []Language{
	{ID: "go", Name: "Go", Extensions: []string{".go"}, LineComment: "//"},
	{ID: "rust", Name: "Rust", Extensions: []string{".rs"}, LineComment: "//"},
	{ID: "typescript", Name: "TypeScript", Extensions: []string{".ts", ".tsx"}, LineComment: "//"},
	{ID: "javascript", Name: "JavaScript", Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}, LineComment: "//"},
	{ID: "python", Name: "Python", Extensions: []string{".py", ".pyw"}, LineComment: "#"},
	{ID: "ruby", Name: "Ruby", Extensions: []string{".rb"}, Filenames: []string{"Rakefile", "Gemfile"}, LineComment: "#"},
	{ID: "java", Name: "Java", Extensions: []string{".java"}, LineComment: "//"},
	{ID: "c", Name: "C", Extensions: []string{".c", ".h"}, LineComment: "//"},
	{ID: "cpp", Name: "C++", Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"}, LineComment: "//"},
	{ID: "csharp", Name: "C#", Extensions: []string{".cs"}, LineComment: "//"},
	{ID: "swift", Name: "Swift", Extensions: []string{".swift"}, LineComment: "//"},
	{ID: "kotlin", Name: "Kotlin", Extensions: []string{".kt", ".kts"}, LineComment: "//"},
	{ID: "scala", Name: "Scala", Extensions: []string{".scala"}, LineComment: "//"},
	{ID: "php", Name: "PHP", Extensions: []string{".php"}, LineComment: "//"},
	{ID: "lua", Name: "Lua", Extensions: []string{".lua"}, LineComment: "--"},
	{ID: "sh", Name: "Shell", Extensions: []string{".sh", ".bash", ".zsh"}, Filenames: []string{".bashrc", ".profile"}, LineComment: "#"},
	{ID: "yaml", Name: "YAML", Extensions: []string{".yaml", ".yml"}, LineComment: "#"},
	{ID: "toml", Name: "TOML", Extensions: []string{".toml"}, LineComment: "#"},
	{ID: "json", Name: "JSON", Extensions: []string{".json"}},
	{ID: "xml", Name: "XML", Extensions: []string{".xml"}},
	{ID: "html", Name: "HTML", Extensions: []string{".html", ".htm"}},
	{ID: "css", Name: "CSS", Extensions: []string{".css"}},
	{ID: "markdown", Name: "Markdown", Extensions: []string{".md", ".markdown"}},
	{ID: "sql", Name: "SQL", Extensions: []string{".sql"}, LineComment: "--"},
	{ID: "haskell", Name: "Haskell", Extensions: []string{".hs"}, LineComment: "--"},
	{ID: "elixir", Name: "Elixir", Extensions: []string{".ex", ".exs"}, LineComment: "#"},
	{ID: "erlang", Name: "Erlang", Extensions: []string{".erl", ".hrl"}, LineComment: "%"},
	{ID: "clojure", Name: "Clojure", Extensions: []string{".clj", ".cljs", ".cljc"}, LineComment: ";"},
	{ID: "scheme", Name: "Scheme", Extensions: []string{".scm", ".ss"}, LineComment: ";"},
	{ID: "fortran", Name: "Fortran", Extensions: []string{".f90", ".f95"}, LineComment: "!"},
	{ID: "tex", Name: "TeX", Extensions: []string{".tex", ".sty"}, LineComment: "%"},
	{ID: "vim", Name: "Vim script", Extensions: []string{".vim"}, Filenames: []string{".vimrc"}, LineComment: "\""},
	{ID: "makefile", Name: "Makefile", Extensions: []string{".mk"}, Filenames: []string{"Makefile", "GNUmakefile"}, LineComment: "#"},
	{ID: "dockerfile", Name: "Dockerfile", Filenames: []string{"Dockerfile"}, LineComment: "#"},
	{ID: "ini", Name: "INI", Extensions: []string{".ini", ".cfg", ".conf"}, LineComment: ";"},
	{ID: "zig", Name: "Zig", Extensions: []string{".zig"}, LineComment: "//"},
	{ID: "protobuf", Name: "Protocol Buffers", Extensions: []string{".proto"}, LineComment: "//"},
}
