package activity

// Models returns every persisted model in dependency order.
func Models() []any {
	return []any{
		&ConnectedRepo{},
		&ActivityLog{},
		&ManualLog{},
		&GitCommit{},
		&Conversation{},
		&GitCheckout{},
		&GitHookInstall{},
	}
}
