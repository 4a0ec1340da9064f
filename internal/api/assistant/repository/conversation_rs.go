package assistantRepository

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	contextPkg "AssistantGolang/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sirupsen/logrus"
)

type ConversationDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Text        sql.NullString `db:"text"`
	EnglishText sql.NullString `db:"english_text"`
	IsUser      sql.NullBool   `db:"is_user"`
	Category    sql.NullString `db:"category"`
	Loading     sql.NullBool   `db:"loading"`
	ContentURL  sql.NullString `db:"content_url"`
	ActionURI   sql.NullString `db:"action_uri"`
	AudioURL    sql.NullString `db:"audio_url"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *conversationRepository) CreateConversation(ctx context.Context, conv entity.Conversation) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":           conv.ID,
		"user_id":      conv.UserID,
		"text":         conv.Text,
		"english_text": conv.EnglishText,
		"is_user":      conv.IsUser,
		"category":     string(conv.Category),
		"loading":      conv.Loading,
		"content_url":  conv.ContentURL,
		"action_uri":   conv.ActionURI,
		"audio_url":    conv.AudioURL,
		"created_at":   conv.CreatedAt,
		"updated_at":   conv.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateConversation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateConversation named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating conversation")
		return err
	}

	return nil
}

func (r *conversationRepository) UpdateConversation(ctx context.Context, conv entity.Conversation) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":           conv.ID,
		"text":         conv.Text,
		"english_text": conv.EnglishText,
		"category":     string(conv.Category),
		"loading":      conv.Loading,
		"content_url":  conv.ContentURL,
		"action_uri":   conv.ActionURI,
		"audio_url":    conv.AudioURL,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateConversation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateConversation named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateConversation execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateConversation rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         conv.ID,
		}).Warn("UpdateConversation no rows affected")
		return assistant.ErrConversationNotFound
	}

	return nil
}

func (r *conversationRepository) DeleteConversation(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteConversation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteConversation named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteConversation execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteConversation rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteConversation no rows affected")
		return assistant.ErrConversationNotFound
	}

	return nil
}

func (r *conversationRepository) GetConversationsByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.Conversation, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var conversationsList []ConversationDB
	var total int

	countArgsKV := map[string]interface{}{
		"user_id": userID,
	}

	countQuery, countArgs, err := sqlx.Named(queryCountConversationsByUserID, countArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountConversationsByUserID named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountConversationsByUserID execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	}

	query, args, err := sqlx.Named(queryGetConversationsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetConversationsByUserID named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &conversationsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetConversationsByUserID execution err")
		return nil, 0, err
	}

	var conversations []entity.Conversation
	for _, convDB := range conversationsList {
		conversations = append(conversations, r.makeConversation(convDB))
	}

	return conversations, total, nil
}

func (r *conversationRepository) GetRecentConversations(ctx context.Context, userID string, limit int) ([]entity.Conversation, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var conversationsList []ConversationDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetRecentConversations, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentConversations named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &conversationsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentConversations execution err")
		return nil, err
	}

	// Oldest first so the AI history reads in order.
	conversations := make([]entity.Conversation, 0, len(conversationsList))
	for i := len(conversationsList) - 1; i >= 0; i-- {
		conversations = append(conversations, r.makeConversation(conversationsList[i]))
	}

	return conversations, nil
}

func (r *conversationRepository) ClearConversations(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryClearConversations, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearConversations named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearConversations execution err")
		return err
	}

	return nil
}

func (r *conversationRepository) makeConversation(convDB ConversationDB) entity.Conversation {
	return entity.Conversation{
		ID:          convDB.ID.String,
		UserID:      convDB.UserID.String,
		Text:        convDB.Text.String,
		EnglishText: convDB.EnglishText.String,
		IsUser:      convDB.IsUser.Bool,
		Category:    entity.Category(convDB.Category.String),
		Loading:     convDB.Loading.Bool,
		ContentURL:  convDB.ContentURL.String,
		ActionURI:   convDB.ActionURI.String,
		AudioURL:    convDB.AudioURL.String,
		CreatedAt:   convDB.CreatedAt,
		UpdatedAt:   convDB.UpdatedAt,
	}
}
