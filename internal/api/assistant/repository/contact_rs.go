package assistantRepository

import (
	"AssistantGolang/internal/entity"
	contextPkg "AssistantGolang/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sirupsen/logrus"
)

type ContactDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Number    sql.NullString `db:"number"`
	CreatedAt time.Time      `db:"created_at"`
}

// ReplaceContacts swaps the whole synced contact list. Run it on a tx client
// so a failed insert cannot leave the directory half empty.
func (r *contactRepository) ReplaceContacts(ctx context.Context, userID string, contacts []entity.Contact) error {
	requestID := contextPkg.GetRequestID(ctx)

	deleteArgsKV := map[string]interface{}{
		"user_id": userID,
	}

	deleteQuery, deleteArgs, err := sqlx.Named(queryDeleteContactsByUserID, deleteArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ReplaceContacts delete named query preparation err")
		return err
	}

	deleteQuery = r.q.Rebind(deleteQuery)

	if _, err := r.q.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ReplaceContacts delete execution err")
		return err
	}

	for _, contact := range contacts {
		argsKV := map[string]interface{}{
			"id":         contact.ID,
			"user_id":    userID,
			"name":       contact.Name,
			"number":     contact.Number,
			"created_at": contact.CreatedAt,
		}

		query, args, err := sqlx.Named(queryCreateContact, argsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ReplaceContacts insert named query preparation err")
			return err
		}

		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ReplaceContacts insert execution err")
			return err
		}
	}

	return nil
}

func (r *contactRepository) GetContactsByUserID(ctx context.Context, userID string) ([]entity.Contact, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var contactsList []ContactDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetContactsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetContactsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &contactsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetContactsByUserID execution err")
		return nil, err
	}

	contacts := make([]entity.Contact, 0, len(contactsList))
	for _, contactDB := range contactsList {
		contacts = append(contacts, entity.Contact{
			ID:        contactDB.ID.String,
			UserID:    contactDB.UserID.String,
			Name:      contactDB.Name.String,
			Number:    contactDB.Number.String,
			CreatedAt: contactDB.CreatedAt,
		})
	}

	return contacts, nil
}
