package converter

import (
	"encoding/json"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/pgconv"
)

func JobToRow(j *notification.Job) sqlstore.NotificationJobs {
	return sqlstore.NotificationJobs{
		ID:        j.ID(),
		Kind:      j.Kind(),
		Topic:     j.Topic(),
		Payload:   j.Payload(),
		RunAt:     pgconv.TimeToPgtype(j.RunAt()),
		Attempts:  int32(j.Attempts()), // #nosec G115 -- attempts never exceed MaxAttempts
		Status:    string(j.Status()),
		LastError: pgconv.StringPtrToPgtype(j.LastError()),
		CreatedAt: pgconv.TimeToPgtype(j.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(j.UpdatedAt()),
	}
}

func JobFromRow(row sqlstore.NotificationJobs) *notification.Job {
	return notification.ReconstructJob(
		row.ID, row.Kind, row.Topic, row.Payload,
		pgconv.TimeFromPgtype(row.RunAt),
		int(row.Attempts),
		notification.JobStatus(row.Status),
		pgconv.StringPtrFromPgtype(row.LastError),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func NotificationToRow(n *notification.Notification) (sqlstore.Notifications, error) {
	var data []byte
	if n.Data() != nil {
		b, err := json.Marshal(n.Data())
		if err != nil {
			return sqlstore.Notifications{}, errs.Wrap(err, "marshal notification data")
		}
		data = b
	}
	return sqlstore.Notifications{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Data:      data,
		IsRead:    n.IsRead(),
		ReadAt:    pgconv.TimePtrToPgtype(n.ReadAt()),
		CreatedAt: pgconv.TimeToPgtype(n.CreatedAt()),
	}, nil
}

func NotificationFromRow(row sqlstore.Notifications) (*notification.Notification, error) {
	kind, err := notification.ParseType(row.Type)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &data); err != nil {
			return nil, errs.Wrap(err, "unmarshal notification data")
		}
	}
	return notification.ReconstructNotification(row.ID, row.UserID, kind, row.Title, row.Message, data,
		row.IsRead, pgconv.TimePtrFromPgtype(row.ReadAt), pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
