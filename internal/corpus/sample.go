package corpus

import "github.com/cloudwork-labs/ragline/internal/domain/document"

// Sample returns the built-in CloudWork Manager support knowledge set,
// used when no corpus file is configured.
func Sample() []document.Document {
	return []document.Document{
		document.Reconstruct(
			"onboarding-guide",
			"導入オンボーディング手順書（抜粋）",
			document.PDF,
			"docs/onboarding-guide.pdf",
			"CloudWork Manager を新規導入する際の社内標準手順。初期設定では SSO と監査ログを有効化し、"+
				"アカウント種別ごとに最小権限ロールを割り当てる。ワークフロー承認経路は申請・承認・最終承認の"+
				"3段階を基本とし、Slack 通知をオプションで有効化できる。",
		),
		document.Reconstruct(
			"billing-policy",
			"課金・請求ポリシー v1.4",
			document.Policy,
			"handbook/billing-policy.md",
			"料金は月次従量制。基本料金は1テナントあたり固定、追加はアクティブユーザー数に基づく。"+
				"締め日は毎月末、請求書は翌月5営業日以内にメール送付。支払い遅延が3営業日を超えると自動で"+
				"閲覧専用モードへ移行する。エンタープライズ契約では前倒し請求と分割払いのオプションがある。",
		),
		document.Reconstruct(
			"backup-drill",
			"バックアップ & DR 計画（サマリ）",
			document.Markdown,
			"runbook/backup-and-dr.md",
			"本番データベースは15分間隔で PITR を有効化し、S3 へ日次スナップショットを保管する。"+
				"障害発生時は RPO 15分以内、RTO 60分以内を目標とし、代替リージョンへのフェイルオーバー手順を"+
				"runbook に記載。アプリ層は IaC で再構築し、障害報告はステータスページへ即時掲載する。",
		),
		document.Reconstruct(
			"security-baseline",
			"セキュリティ基準（社内公開版）",
			document.Policy,
			"security/security-baseline.md",
			"管理者アカウントは MFA 必須。監査ログを90日保持し、API キーは最低限の権限スコープで発行する。"+
				"顧客データの持ち出しは禁止で、検証環境には匿名化データのみを使用する。個人情報を含む"+
				"エクスポートは承認フローを通過した申請のみ許可する。",
		),
		document.Reconstruct(
			"slack-runbook",
			"障害時のSlack連絡テンプレート",
			document.Markdown,
			"runbook/incident-comm-template.md",
			"障害検知時は #incidents に以下を投稿: (1) 発生時刻 (2) 影響範囲 (3) 初期トリアージ結果 "+
				"(4) 回避策の有無。15分ごとにアップデートを追記し、主要顧客にはCS経由でメール連絡する。",
		),
		document.Reconstruct(
			"slo-metrics",
			"SLO & エラーバジェット方針",
			document.Policy,
			"handbook/slo-policy.md",
			"APIレイテンシP95 800ms以下、成功率99.9%をSLOとする。30日間のエラーバジェットを消費した場合、"+
				"新規リリースを凍結し、バグ修正と信頼性改善を最優先にする。SLO違反時はPostmortemを"+
				"48時間以内に公開。",
		),
		document.Reconstruct(
			"pii-handling",
			"個人情報取扱いガイド",
			document.Policy,
			"security/pii-handling.md",
			"個人情報は暗号化されたストレージで保管し、アクセスは監査ログに記録する。サポート対応時の"+
				"ログ共有は匿名化済みの形で行う。検証環境ではダミーデータのみ使用し、スクリーンショット"+
				"共有時も氏名やメールをマスクする。",
		),
		document.Reconstruct(
			"api-usage",
			"API 利用ベストプラクティス",
			document.FAQ,
			"docs/api-best-practices.md",
			"APIキーは役割ごとに分割し、最小権限で発行する。Webhookの再試行は指数バックオフで最大5回。"+
				"大規模エクスポートはジョブAPIを使い、完了通知をWebhookで受け取る。レートリミット超過時は"+
				"Retry-Afterヘッダーを確認する。",
		),
		document.Reconstruct(
			"data-retention",
			"データ保持と削除ポリシー",
			document.Policy,
			"handbook/data-retention.md",
			"システムログは90日、監査ログは180日保持。ユーザー削除は30日間の猶予期間後に完全削除される。"+
				"エクスポートデータは7日以内に失効する一時URLで提供し、バックアップからの個別復元は"+
				"オンコール承認が必要。",
		),
		document.Reconstruct(
			"sso-setup",
			"SSO設定チェックリスト",
			document.PDF,
			"docs/sso-setup.pdf",
			"IdPにはSAML 2.0で接続し、NameIDはemailを使用。初回ログイン時にロールマッピングを実行し、"+
				"管理者にはMFAを強制する。SCIMを有効化して自動プロビジョニングを行い、定期的に"+
				"デプロビジョニングジョブの結果を確認する。",
		),
	}
}
