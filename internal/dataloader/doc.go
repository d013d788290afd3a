// Package dataloader drives mini-batch iteration over an indexable dataset.
//
// A Loader pulls index batches from a sampler.BatchSampler, fetches each
// record from a Dataset and merges the records of a batch with a collate
// function. Iteration is synchronous and lazy: nothing is fetched until the
// consumer asks for the next batch, and breaking out of the loop ends the pass.
//
// Example:
//
//	ds := dataloader.SliceDataset[dataloader.Sample](samples)
//	l, err := dataloader.New(ds, dataloader.Options[dataloader.Sample, dataloader.SampleBatch]{
//	    BatchSize: 16,
//	    Shuffle:   true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for epoch := 0; epoch < 10; epoch++ {
//	    for batch, err := range l.All() {
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        fmt.Println(batch.Fields[0].Shape())
//	    }
//	}
package dataloader
