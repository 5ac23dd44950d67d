package retrieval

import "strings"

// answerInstructions is the fixed system instruction: answer only from the
// given context and explicitly flag insufficient grounding.
func answerInstructions() string {
	return strings.Join([]string{
		"あなたは CloudWork Manager チーム内で動作する社内向けRAGのPoCです。",
		"出力は日本語で、3-5文の簡潔な段落にまとめてください。",
		"提示されたコンテキストの根拠のみに依拠して回答し、推測は避けてください。",
		"コンテキストに十分な根拠がある場合は追加コメントを入れずに回答してください。",
		"コンテキストだけでは回答を裏付けられないときに限り、『社内ドキュメントを拡充する必要があります』と補足してください。",
	}, "\n")
}

// buildPrompt combines the assembled context with the literal question.
func buildPrompt(contextBlock, question string) string {
	return strings.Join([]string{
		"以下は社内ナレッジから検索した抜粋です。重要度順に並んでいます。",
		contextBlock,
		"ユーザーの質問: " + question,
		"上記コンテキストから引用しながら回答してください。足りない場合は不足を明記してください。",
	}, "\n\n")
}
