package leads

import (
	"context"
	"testing"

	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestList_FiltersAndPaginates(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		testdata.NewLead(t, client, testdata.WithProduct(product.Ekkle), testdata.WithStage(pipeline.StageQualified))
	}
	testdata.NewLead(t, client, testdata.WithProduct(product.Occhiale))

	resp, err := svc.List(ctx, models.LeadListRequest{Product: "ekkle", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.True(t, resp.Pagination.HasNext)

	resp, err = svc.List(ctx, models.LeadListRequest{Stage: "new"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Total)

	_, err = svc.List(ctx, models.LeadListRequest{Stage: "limbo"})
	assert.True(t, domain.IsValidation(err))
}

func TestList_Search(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()

	target := testdata.NewLead(t, client, testdata.WithPhone("5521987654321"))
	testdata.NewLead(t, client)

	resp, err := svc.List(ctx, models.LeadListRequest{Search: "98765"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, target.ID, resp.Data[0].ID)
}

func TestCreateManual(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	resp, err := svc.CreateManual(ctx, models.CreateLeadRequest{Phone: "(11) 98888-7777", Product: "occhiale", Name: "Ótica Visão", State: "sp"})
	require.NoError(t, err)
	assert.Equal(t, "5511988887777", resp.Phone)
	assert.Equal(t, "manual", resp.Source)
	assert.Equal(t, "new", resp.Stage)
	assert.Equal(t, "SP", resp.State)

	_, err = svc.CreateManual(ctx, models.CreateLeadRequest{Phone: "11988887777", Product: "occhiale"})
	assert.True(t, domain.IsConflict(err))
}

func TestUpdate_ValidatesStage(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()
	l := testdata.NewLead(t, client, testdata.WithStage(pipeline.StageQualifying))

	resp, err := svc.Update(ctx, l.ID, models.UpdateLeadRequest{Stage: strPtr("presenting"), City: strPtr("Niterói")})
	require.NoError(t, err)
	assert.Equal(t, "presenting", resp.Stage)
	assert.Equal(t, "closer", resp.AssignedAgent)
	assert.Equal(t, "Niterói", resp.City)

	_, err = svc.Update(ctx, l.ID, models.UpdateLeadRequest{Stage: strPtr("active")})
	assert.True(t, domain.IsTransition(err))

	_, err = svc.Update(ctx, l.ID, models.UpdateLeadRequest{Stage: strPtr("bogus")})
	assert.True(t, domain.IsValidation(err))
}

func TestDetailAndDelete(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()
	l := testdata.NewLead(t, client)

	_, err := svc.AppendMessage(ctx, Message{LeadID: l.ID, Product: l.Product, Direction: conversation.DirectionInbound, Content: "oi"})
	require.NoError(t, err)

	detail, err := svc.Detail(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, detail.Lead.ID)
	assert.Len(t, detail.Conversations, 1)

	recent, err := svc.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	page, err := svc.Conversations(ctx, "occhiale", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Total)

	require.NoError(t, svc.Delete(ctx, l.ID))
	_, err = svc.Get(ctx, l.ID)
	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(svc.Delete(ctx, l.ID)))
}
