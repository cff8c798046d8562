package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	assistdog "github.com/ONSdigital/dp-assistdog"
	"github.com/ONSdigital/dp-sdmx-api/config"
	"github.com/ONSdigital/dp-sdmx-api/models"
	"github.com/cucumber/godog"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

var WellKnownTestTime time.Time

func init() {
	WellKnownTestTime, _ = time.Parse("2006-01-02T15:04:05Z", "2021-01-01T00:00:00Z")
}

func (c *SdmxComponent) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^there are no messages$`, c.thereAreNoMessages)
	ctx.Step(`^I have these messages:$`, c.iHaveTheseMessages)
	ctx.Step(`^I have a message "([^"]*)" with body:$`, c.iHaveAMessageWithBody)
	ctx.Step(`^the message store should contain (\d+) messages?$`, c.theMessageStoreShouldContainMessages)
	ctx.Step(`^the message "([^"]*)" should not be stored$`, c.theMessageShouldNotBeStored)
	ctx.Step(`^the stored messages should be:$`, c.theStoredMessagesShouldBe)
}

func (c *SdmxComponent) messages() *mongodriver.Collection {
	return c.MongoClient.Connection.Collection(c.MongoClient.ActualCollectionName(config.MessagesCollection))
}

func (c *SdmxComponent) thereAreNoMessages() error {
	return c.MongoClient.Connection.DropDatabase(context.Background())
}

func (c *SdmxComponent) iHaveTheseMessages(table *godog.Table) error {
	rows, err := assistdog.NewDefault().CreateSlice(new(models.Message), table)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}

	for i, m := range rows.([]*models.Message) {
		m.ETag = models.ETag([]byte(m.Raw))
		m.LastUpdated = WellKnownTestTime.Add(time.Duration(i) * time.Hour)
		if err := c.MongoClient.AddMessage(context.Background(), m); err != nil {
			return err
		}
	}
	return nil
}

func (c *SdmxComponent) iHaveAMessageWithBody(id string, body *godog.DocString) error {
	message := &models.Message{
		ID:          id,
		ETag:        models.ETag([]byte(body.Content)),
		LastUpdated: WellKnownTestTime,
		Raw:         body.Content,
	}

	msg, err := message.Parse()
	if err != nil {
		return err
	}
	if msg.Data != nil {
		message.DataSets = len(msg.Data.DataSets)
	}
	message.HasErrors = msg.Data == nil

	return c.MongoClient.AddMessage(context.Background(), message)
}

func (c *SdmxComponent) theMessageStoreShouldContainMessages(expected int) error {
	var stored []*models.Message
	count, err := c.messages().Find(context.Background(), bson.M{}, &stored)
	if err != nil {
		return err
	}

	assert.Equal(&c.ErrorFeature, expected, count)
	return c.ErrorFeature.StepError()
}

func (c *SdmxComponent) theMessageShouldNotBeStored(id string) error {
	var message models.Message
	err := c.messages().FindOne(context.Background(), bson.M{"_id": id}, &message)
	if err == nil {
		return fmt.Errorf("message %q is still stored", id)
	}
	if !errors.Is(err, mongodriver.ErrNoDocumentFound) {
		return err
	}
	return nil
}

func (c *SdmxComponent) theStoredMessagesShouldBe(table *godog.Table) error {
	expected, err := assistdog.NewDefault().CreateSlice(new(models.Message), table)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}

	var stored []*models.Message
	if _, err := c.messages().Find(context.Background(), bson.M{}, &stored, mongodriver.Sort(bson.M{"_id": 1})); err != nil {
		return err
	}

	want := expected.([]*models.Message)
	assert.Equal(&c.ErrorFeature, len(want), len(stored))
	for i := 0; i < len(want) && i < len(stored); i++ {
		assert.Equal(&c.ErrorFeature, want[i].ID, stored[i].ID)
		assert.Equal(&c.ErrorFeature, want[i].MessageID, stored[i].MessageID)
		assert.Equal(&c.ErrorFeature, want[i].DataSets, stored[i].DataSets)
		assert.Equal(&c.ErrorFeature, want[i].HasErrors, stored[i].HasErrors)
	}
	return c.ErrorFeature.StepError()
}
