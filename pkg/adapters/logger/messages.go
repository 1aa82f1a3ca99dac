package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Host lifecycle (info)
		"Bridge listening on stdio with %d commands": "%d 個のコマンドで stdio 上のブリッジを待機中",
		"Bridge input closed":                        "ブリッジの入力が閉じられました",
		"Interrupted, shutting down...":              "中断されました。シャットダウン中...",
		"Loaded configuration from %s":               "%s から設定を読み込みました",
		"Wrote default configuration to %s":          "既定の設定を %s に書き込みました",

		// Gateway (debug)
		"Writing %d bytes to %s":     "%d バイトを %s に書き込み中",
		"Creating placeholder at %s": "%s にプレースホルダーを作成中",
		"Checking existence of %s":   "%s の存在を確認中",
		"Ensuring directory %s":      "ディレクトリ %s を確認中",
		"Invoking %s (call %s)":      "%s を呼び出し中 (呼び出し %s)",
		"Call %s finished in %s":     "呼び出し %s が %s で完了しました",

		// Warnings
		"Call %s to %s failed: %s":  "%[2]s への呼び出し %[1]s が失敗しました: %[3]s",
		"Rejected request line: %s": "リクエスト行を拒否しました: %s",
		"Write to %s failed: %s":    "%s への書き込みに失敗しました: %s",
		"Placeholder %s failed: %s": "プレースホルダー %s の作成に失敗しました: %s",

		// Errors
		"Failed to write response: %s": "レスポンスの書き込みに失敗しました: %s",
	})
}
