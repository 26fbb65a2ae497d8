package converter

import (
	"encoding/json"

	"commerce-core/internal/infra/outbox"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/pkg/pgconv"
	"commerce-core/internal/usecase/shared"
)

func OutboxMessageToParams(m shared.OutboxMessage) (sqlc.InsertOutboxEventParams, error) {
	headers := m.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	raw, err := json.Marshal(headers)
	if err != nil {
		return sqlc.InsertOutboxEventParams{}, errs.Wrap(err, "encode outbox headers")
	}
	return sqlc.InsertOutboxEventParams{
		AggregateType: m.AggregateType,
		AggregateID:   m.AggregateID,
		EventType:     m.Type,
		Payload:       m.Payload,
		Headers:       raw,
		Traceparent:   pgconv.TextFromString(m.Traceparent),
	}, nil
}

func OutboxEventFromRow(row sqlc.OutboxEvents) (outbox.Event, error) {
	var headers map[string]string
	if len(row.Headers) > 0 {
		if err := json.Unmarshal(row.Headers, &headers); err != nil {
			return outbox.Event{}, errs.Wrapf(err, "decode headers of outbox event %d", row.ID)
		}
	}
	ev := outbox.Event{
		ID:            row.ID,
		AggregateType: row.AggregateType,
		AggregateID:   row.AggregateID,
		Type:          row.EventType,
		Payload:       row.Payload,
		Headers:       headers,
		Traceparent:   pgconv.StringFromText(row.Traceparent),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		Status:        outbox.Status(row.Status),
		RelayID:       pgconv.StringFromText(row.RelayID),
		Attempts:      int(row.Attempts),
	}
	if row.LastError.Valid {
		msg := row.LastError.String
		ev.LastError = &msg
	}
	return ev, nil
}
