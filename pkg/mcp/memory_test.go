package mcp

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/mem/pkg/logger"
	"github.com/papercomputeco/mem/pkg/store"
	testutils "github.com/papercomputeco/mem/pkg/utils/test"
)

var _ = Describe("Memory tools", func() {
	var (
		ctx      context.Context
		tmpDir   string
		embedder *testutils.MockEmbedder
		server   *Server
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "mcp-memory-test-*")
		Expect(err).NotTo(HaveOccurred())

		ctx = context.TODO()
		embedder = testutils.NewMockEmbedder([]float32{0.5, 0.5})
		embedder.Embeddings["grocery reminder"] = []float32{1, 0}
		embedder.Embeddings["family reminder"] = []float32{0, 1}

		st, err := store.New(store.Config{
			Path:       filepath.Join(tmpDir, "store.json"),
			Dimensions: 2,
			Embedder:   embedder,
		}, logger.Nop())
		Expect(err).NotTo(HaveOccurred())

		server, err = NewServer(Config{
			Store:  st,
			Logger: logger.Nop(),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	insert := func(memory, description string) {
		result, output, err := server.handleInsert(ctx, nil, InsertInput{
			Memory:      memory,
			Description: description,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.IsError).To(BeFalse())
		Expect(output.Stored).To(BeTrue())
	}

	Describe("handleInsert", func() {
		It("stores a memory", func() {
			insert("buy milk", "grocery reminder")
		})

		It("rejects a missing memory", func() {
			result, output, err := server.handleInsert(ctx, nil, InsertInput{Description: "d"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
			Expect(output.Stored).To(BeFalse())
		})

		It("rejects a missing description", func() {
			result, _, err := server.handleInsert(ctx, nil, InsertInput{Memory: "m"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})

		It("reports store failures as tool errors", func() {
			embedder.FailOn = "doomed"
			result, _, err := server.handleInsert(ctx, nil, InsertInput{
				Memory:      "value",
				Description: "doomed",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})
	})

	Describe("handleGet", func() {
		It("returns the best matching memory", func() {
			insert("buy milk", "grocery reminder")
			insert("call mom", "family reminder")

			result, output, err := server.handleGet(ctx, nil, GetInput{Description: "grocery reminder"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeFalse())
			Expect(output.Found).To(BeTrue())
			Expect(output.Memory.Value).To(Equal("buy milk"))
			Expect(output.Memory.Score).To(Equal(float32(1.0)))
		})

		It("reports not found on an empty store", func() {
			result, output, err := server.handleGet(ctx, nil, GetInput{Description: "anything"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeFalse())
			Expect(output.Found).To(BeFalse())
			Expect(output.Memory).To(BeNil())
		})

		It("rejects a missing description", func() {
			result, _, err := server.handleGet(ctx, nil, GetInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})
	})

	Describe("handleList", func() {
		It("returns memories ranked best first", func() {
			insert("buy milk", "grocery reminder")
			insert("call mom", "family reminder")

			result, output, err := server.handleList(ctx, nil, ListInput{
				Description: "grocery reminder",
				Count:       10,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeFalse())
			Expect(output.Memories).To(HaveLen(2))
			Expect(output.Memories[0].Value).To(Equal("buy milk"))
			Expect(output.Memories[1].Value).To(Equal("call mom"))
		})

		It("caps results at count", func() {
			insert("buy milk", "grocery reminder")
			insert("call mom", "family reminder")

			_, output, err := server.handleList(ctx, nil, ListInput{
				Description: "grocery reminder",
				Count:       1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(output.Memories).To(HaveLen(1))
		})

		It("defaults count to 10", func() {
			insert("buy milk", "grocery reminder")

			_, output, err := server.handleList(ctx, nil, ListInput{Description: "grocery reminder"})
			Expect(err).NotTo(HaveOccurred())
			Expect(output.Memories).To(HaveLen(1))
		})

		It("returns an empty list on an empty store", func() {
			result, output, err := server.handleList(ctx, nil, ListInput{Description: "anything"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeFalse())
			Expect(output.Memories).NotTo(BeNil())
			Expect(output.Memories).To(BeEmpty())
		})

		It("rejects a missing description", func() {
			result, _, err := server.handleList(ctx, nil, ListInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsError).To(BeTrue())
		})
	})
})
