package prompt

import (
	"strings"

	"github.com/masmgr/whatsnew-go/internal/gitctx"
)

// Build renders the fixed instruction template with the gathered change
// context interpolated verbatim. The template is not configurable: the
// locale set, the JSON-only requirement, and the tone constraints are
// part of the output contract.
func Build(cc gitctx.ChangeContext) string {
	var b strings.Builder

	b.WriteString("以下の更新情報をもとに、App Store の「What's New」文面を4言語で作成してください。\n")
	b.WriteString("対象言語は日本語・英語・スペイン語・韓国語です。\n")
	b.WriteString("\n")
	b.WriteString("制約:\n")
	b.WriteString("- 出力はJSONオブジェクトのみ\n")
	b.WriteString("- キーは必ず \"ja\", \"en-US\", \"es-ES\", \"ko\"\n")
	b.WriteString("- 各値はApp Store向けの自然な文面\n")
	b.WriteString("- 各言語 2-5 行程度（改行は使ってよい）\n")
	b.WriteString("- 誇張表現や未実装機能は書かない\n")
	b.WriteString("- 絵文字は使わない\n")
	b.WriteString("\n")
	b.WriteString("変更コミット:\n")
	b.WriteString(cc.CommitLog)
	b.WriteString("\n")
	b.WriteString("\n")
	b.WriteString("変更ファイル:\n")
	b.WriteString(cc.ChangedFiles)

	return b.String()
}
