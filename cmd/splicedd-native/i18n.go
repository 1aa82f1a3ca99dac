package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Native file access for the splicedd sample browser": "splicedd サンプルブラウザのネイティブファイルアクセス",
		"Configuration file path":                            "設定ファイルのパス",
		"Log level (debug, info, warn, error)":               "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                            "すべてのログ出力を抑制",

		// Commands
		"Serve file commands as JSON lines over stdin and stdout": "標準入出力で JSON 行としてファイルコマンドを提供",
		"Write a .wav sample from a file or stdin":                "ファイルまたは標準入力から .wav サンプルを書き込む",
		"Print whether a file or directory exists":                "ファイルまたはディレクトリが存在するかを表示",
		"Create an empty placeholder file":                        "空のプレースホルダーファイルを作成",
		"Write the default configuration file":                    "既定の設定ファイルを書き込む",

		// Flags
		"Base directory (defaults to sample_dir from the configuration)": "基準ディレクトリ（既定は設定の sample_dir）",
		"Overwrite an existing file":                                     "既存のファイルを上書き",

		// Errors
		"missing RELATIVE_PATH argument":               "RELATIVE_PATH 引数がありません",
		"%s already exists (use --force to overwrite)": "%s は既に存在します（上書きするには --force を使用）",
		"Error: %s": "エラー: %s",
	})
}
