package sdk

import (
	"context"
	"errors"
	"sync"

	"github.com/ONSdigital/dp-sdmx-api/models"
)

// GenericBatchGetter defines the method signature for a batch getter to obtain a batch of some generic resource
type GenericBatchGetter func(offset int) (batch interface{}, totalCount int, err error)

// GenericBatchProcessor defines the method signature for a batch processor to process a batch of some generic resource
type GenericBatchProcessor func(batch interface{}) (abort bool, err error)

// MessagesBatchProcessor processes one page of stored messages
type MessagesBatchProcessor func(MessageList) (abort bool, err error)

// GetMessagesInBatches pages through every stored message, fetching up to maxWorkers pages at a time
func (c *Client) GetMessagesInBatches(ctx context.Context, headers Headers, batchSize, maxWorkers int) (messages MessageList, err error) {
	err = c.GetMessagesBatchProcess(ctx, headers, func(b MessageList) (bool, error) {
		if len(messages.Items) == 0 {
			messages.Items = make([]*models.Message, 0, b.TotalCount)
		}
		messages.Items = append(messages.Items, b.Items...)
		return false, nil
	}, batchSize, maxWorkers)
	if err != nil {
		return MessageList{}, err
	}

	messages.Count = len(messages.Items)
	messages.Limit = len(messages.Items)
	messages.TotalCount = len(messages.Items)
	return messages, nil
}

// GetMessagesBatchProcess gets the stored messages in pages of batchSize and calls processBatch for each page
func (c *Client) GetMessagesBatchProcess(ctx context.Context, headers Headers, processBatch MessagesBatchProcessor, batchSize, maxWorkers int) error {
	if processBatch == nil {
		return errors.New("processBatch function cannot be nil")
	}

	batchGetter := func(offset int) (interface{}, int, error) {
		b, err := c.GetMessages(ctx, headers, &QueryParams{Offset: offset, Limit: batchSize})
		return b, b.TotalCount, err
	}

	batchProcessor := func(b interface{}) (abort bool, err error) {
		list, ok := b.(MessageList)
		if !ok {
			return true, errors.New("unexpected batch type")
		}
		return processBatch(list)
	}

	return ProcessInConcurrentBatches(batchGetter, batchProcessor, batchSize, maxWorkers)
}

// ProcessInConcurrentBatches is a generic method to concurrently obtain some resource in batches and then process each batch.
// Batches are processed one at a time, in no particular order.
func ProcessInConcurrentBatches(getBatch GenericBatchGetter, processBatch GenericBatchProcessor, batchSize, maxWorkers int) (err error) {
	if getBatch == nil {
		return errors.New("getBatch function cannot be nil")
	}
	if processBatch == nil {
		return errors.New("processBatch function cannot be nil")
	}
	if batchSize <= 0 {
		return errors.New("batchSize must be a positive value")
	}
	if maxWorkers <= 0 {
		return errors.New("maxWorkers must be a positive value")
	}

	// the first batch is fetched sequentially to learn the total count
	batch, totalCount, err := getBatch(0)
	if err != nil {
		return err
	}
	if abort, err := processBatch(batch); abort || err != nil {
		return err
	}

	numCalls := (totalCount - 1) / batchSize

	var (
		wg          sync.WaitGroup
		lockResult  sync.Mutex
		once        sync.Once
		firstErr    error
		chAbort     = make(chan struct{})
		chSemaphore = make(chan struct{}, maxWorkers)
	)

	abort := func(err error) {
		once.Do(func() {
			firstErr = err
			close(chAbort)
		})
	}

	isAborting := func() bool {
		select {
		case <-chAbort:
			return true
		default:
			return false
		}
	}

	doProcessBatch := func(offset int) {
		defer func() {
			<-chSemaphore
			wg.Done()
		}()

		if isAborting() {
			return
		}

		batch, _, err := getBatch(offset)
		if err != nil {
			abort(err)
			return
		}

		lockResult.Lock()
		defer lockResult.Unlock()

		if isAborting() {
			return
		}
		forceAbort, err := processBatch(batch)
		if err != nil || forceAbort {
			abort(err)
		}
	}

	for i := 1; i <= numCalls; i++ {
		wg.Add(1)
		chSemaphore <- struct{}{}
		go doProcessBatch(i * batchSize)
	}

	wg.Wait()
	return firstErr
}
