package assistantRepository

const (
	queryCreateConversation = `
		INSERT INTO conversations (
			id, user_id, text, english_text, is_user, category,
			loading, content_url, action_uri, audio_url,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :text, :english_text, :is_user, :category,
			:loading, :content_url, :action_uri, :audio_url,
			:created_at, :updated_at
		)
	`

	queryUpdateConversation = `
		UPDATE conversations
		SET
			text = :text,
			english_text = :english_text,
			category = :category,
			loading = :loading,
			content_url = :content_url,
			action_uri = :action_uri,
			audio_url = :audio_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteConversation = `
		DELETE FROM conversations
		WHERE id = :id
	`

	queryGetConversationsByUserID = `
		SELECT
			id, user_id, text, english_text, is_user, category,
			loading, content_url, action_uri, audio_url,
			created_at, updated_at
		FROM conversations
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountConversationsByUserID = `
		SELECT COUNT(*)
		FROM conversations
		WHERE user_id = :user_id
	`

	queryGetRecentConversations = `
		SELECT
			id, user_id, text, english_text, is_user, category,
			loading, content_url, action_uri, audio_url,
			created_at, updated_at
		FROM conversations
		WHERE user_id = :user_id AND loading = false
		ORDER BY created_at DESC
		LIMIT :limit
	`

	queryClearConversations = `
		DELETE FROM conversations
		WHERE user_id = :user_id
	`

	queryDeleteContactsByUserID = `
		DELETE FROM contacts
		WHERE user_id = :user_id
	`

	queryCreateContact = `
		INSERT INTO contacts (
			id, user_id, name, number, created_at
		) VALUES (
			:id, :user_id, :name, :number, :created_at
		)
	`

	queryGetContactsByUserID = `
		SELECT
			id, user_id, name, number, created_at
		FROM contacts
		WHERE user_id = :user_id
		ORDER BY name
	`
)
