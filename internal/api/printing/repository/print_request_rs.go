package printingRepository

import (
	"ZisionX/internal/entity"
	contextPkg "ZisionX/pkg/context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type PrintRequestDB struct {
	ID          sql.NullString `db:"id"`
	PhoneNumber sql.NullString `db:"phone_number"`
	EventCode   sql.NullString `db:"event_code"`
	ImageName   sql.NullString `db:"image_name"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *printRequestRepository) Create(c context.Context, printRequest entity.PrintRequest) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           printRequest.ID,
		"phone_number": printRequest.PhoneNumber,
		"event_code":   printRequest.EventCode,
		"image_name":   printRequest.ImageName,
		"created_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreatePrintRequest, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create print request")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating print request")
		return err
	}

	return nil
}

func (r *printRequestRepository) GetByEventCode(c context.Context, eventCode string) ([]entity.PrintRequest, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []PrintRequestDB

	argsKV := map[string]interface{}{
		"event_code": eventCode,
	}

	query, args, err := sqlx.Named(queryGetPrintRequestsByEventCode, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEventCode named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEventCode execution err")
		return nil, err
	}

	result := make([]entity.PrintRequest, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.PrintRequest{
			ID:          row.ID.String,
			PhoneNumber: row.PhoneNumber.String,
			EventCode:   row.EventCode.String,
			ImageName:   row.ImageName.String,
			CreatedAt:   row.CreatedAt,
		})
	}

	return result, nil
}
