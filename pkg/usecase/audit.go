package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
)

func (x *UseCase) insertIssuanceRecord(ctx context.Context, record *model.TokenIssuanceRecord) error {
	schema, err := createOrUpdateAuditTable(ctx, x.clients.BigQuery(), record)
	if err != nil {
		return err
	}

	if err := x.clients.BigQuery().Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert issuance record to BigQuery")
	}

	return nil
}

// createOrUpdateAuditTable infers the row schema and creates the audit table
// on first use, or widens it when the inferred schema gained fields.
func createOrUpdateAuditTable(ctx context.Context, bq interfaces.BigQuery, record *model.TokenIssuanceRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer issuance record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
