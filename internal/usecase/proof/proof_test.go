package proof

import (
	"errors"
	"testing"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	proofdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/proof"
)

var baseTime = time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

func newTestUsecase() (*DefaultProofUsecase, *fakeOrderRepo, *fakeProofRepo, *time.Time) {
	orderRepo := newFakeOrderRepo()
	proofRepo := newFakeProofRepo()
	now := baseTime
	uc := NewDefaultProofUsecase(proofRepo, orderRepo, &fakeStorage{}, &recordingPublisher{}, nil)
	uc.NowFn = func() time.Time { return now }
	return uc, orderRepo, proofRepo, &now
}

func seedOrder(orderRepo *fakeOrderRepo, status domain.OrderStatus) *domain.Order {
	order := &domain.Order{
		ID:           "order-1",
		CustomerID:   "customer-1",
		Status:       status,
		EscrowStatus: domain.EscrowHeld,
		Items: []domain.OrderItem{
			{VendorID: "vendor-a", Quantity: 1, UnitPrice: 50},
		},
	}
	orderRepo.CreateOrder(order)
	return order
}

func uploadInput() *proofdto.UploadProofInput {
	return &proofdto.UploadProofInput{
		ActorID:     "vendor-a",
		ActorRole:   domain.RoleVendor,
		OrderID:     "order-1",
		Image:       []byte("jpeg-bytes"),
		ContentType: "image/jpeg",
		Notes:       "left at the door",
		Location:    "55.75,37.61",
	}
}

func TestUploadProofCreatesPendingProof(t *testing.T) {
	uc, orderRepo, _, _ := newTestUsecase()
	seedOrder(orderRepo, domain.StatusPending)

	out, err := uc.UploadProof(uploadInput())
	if err != nil {
		t.Fatalf("upload proof: %v", err)
	}

	if out.Proof.VerificationStatus != domain.ProofPending {
		t.Fatalf("expected pending proof, got %s", out.Proof.VerificationStatus)
	}
	if !out.Proof.CanReupload {
		t.Fatal("expected reupload open after first upload")
	}
	if !out.Proof.ReuploadExpiresAt.Equal(baseTime.Add(15 * time.Minute)) {
		t.Fatalf("unexpected reupload window end %v", out.Proof.ReuploadExpiresAt)
	}
	// upload alone never advances the order
	if out.OrderStatus != domain.StatusPending {
		t.Fatalf("expected order to stay pending, got %s", out.OrderStatus)
	}

	order, _ := orderRepo.GetOrderByID("order-1")
	if order.ProofID != out.Proof.ID {
		t.Fatal("expected proof linked on the order")
	}
}

func TestUploadProofGuards(t *testing.T) {
	uc, orderRepo, _, _ := newTestUsecase()
	seedOrder(orderRepo, domain.StatusShipped)

	if _, err := uc.UploadProof(uploadInput()); !errors.Is(err, domain.ErrStateConflict) {
		t.Fatalf("expected state conflict for shipped order, got %v", err)
	}

	orderRepo.orders["order-1"].Status = domain.StatusPending
	outsider := uploadInput()
	outsider.ActorID = "vendor-x"
	if _, err := uc.UploadProof(outsider); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for outside vendor, got %v", err)
	}

	empty := uploadInput()
	empty.Image = nil
	if _, err := uc.UploadProof(empty); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty image, got %v", err)
	}
}

func TestReuploadInsideWindow(t *testing.T) {
	uc, orderRepo, _, now := newTestUsecase()
	seedOrder(orderRepo, domain.StatusPending)

	first, err := uc.UploadProof(uploadInput())
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}

	*now = baseTime.Add(14*time.Minute + 59*time.Second)
	second, err := uc.UploadProof(uploadInput())
	if err != nil {
		t.Fatalf("reupload at 14:59: %v", err)
	}
	if second.Proof.ID != first.Proof.ID {
		t.Fatal("expected reupload to keep the same proof record")
	}
	if second.Proof.ImageID == first.Proof.ImageID {
		t.Fatal("expected image replaced")
	}
	// window slides from the reupload time
	if !second.Proof.ReuploadExpiresAt.Equal(now.Add(15 * time.Minute)) {
		t.Fatalf("expected window reset, got %v", second.Proof.ReuploadExpiresAt)
	}
}

func TestReuploadAfterWindowFails(t *testing.T) {
	uc, orderRepo, _, now := newTestUsecase()
	seedOrder(orderRepo, domain.StatusPending)

	if _, err := uc.UploadProof(uploadInput()); err != nil {
		t.Fatalf("first upload: %v", err)
	}

	*now = baseTime.Add(15*time.Minute + 1*time.Second)
	_, err := uc.UploadProof(uploadInput())
	if !errors.Is(err, domain.ErrReuploadWindowExpired) {
		t.Fatalf("expected ErrReuploadWindowExpired at 15:01, got %v", err)
	}
}

func TestApproveClosesReuploadAndShipsOrder(t *testing.T) {
	uc, orderRepo, _, now := newTestUsecase()
	seedOrder(orderRepo, domain.StatusPending)

	uploaded, err := uc.UploadProof(uploadInput())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	*now = baseTime.Add(5 * time.Minute)
	out, err := uc.ReviewProof(&proofdto.ReviewProofInput{
		ActorID:   "admin-1",
		ActorRole: domain.RoleAdmin,
		ProofID:   uploaded.Proof.ID,
		Decision:  proofdto.DecisionApprove,
		Notes:     "clear photo",
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	if out.Proof.VerificationStatus != domain.ProofApproved {
		t.Fatalf("expected approved, got %s", out.Proof.VerificationStatus)
	}
	if out.Proof.CanReupload {
		t.Fatal("expected reupload closed permanently on approval")
	}
	if out.Proof.ReviewerID != "admin-1" || out.Proof.ReviewedAt == nil {
		t.Fatal("expected reviewer recorded")
	}
	if out.OrderStatus != domain.StatusShipped {
		t.Fatalf("expected order advanced to shipped, got %s", out.OrderStatus)
	}

	// even inside the original window, reupload is now rejected
	*now = baseTime.Add(10 * time.Minute)
	if _, err := uc.UploadProof(uploadInput()); err == nil {
		t.Fatal("expected reupload after approval to fail")
	}
}

func TestRejectRevertsAdvancedOrder(t *testing.T) {
	uc, orderRepo, _, now := newTestUsecase()
	seedOrder(orderRepo, domain.StatusPending)

	uploaded, err := uc.UploadProof(uploadInput())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	orderRepo.orders["order-1"].Status = domain.StatusShipped

	*now = baseTime.Add(5 * time.Minute)
	out, err := uc.ReviewProof(&proofdto.ReviewProofInput{
		ActorID:   "admin-1",
		ActorRole: domain.RoleAdmin,
		ProofID:   uploaded.Proof.ID,
		Decision:  proofdto.DecisionReject,
		Notes:     "image is unreadable",
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}

	if out.Proof.VerificationStatus != domain.ProofRejected {
		t.Fatalf("expected rejected, got %s", out.Proof.VerificationStatus)
	}
	if !out.Proof.CanReupload {
		t.Fatal("expected reupload still possible after rejection")
	}
	if out.OrderStatus != domain.StatusPending {
		t.Fatalf("expected order reverted to pending, got %s", out.OrderStatus)
	}

	// rejection does not extend the window: reupload works at 14:59 but not later
	*now = baseTime.Add(14*time.Minute + 59*time.Second)
	if _, err := uc.UploadProof(uploadInput()); err != nil {
		t.Fatalf("reupload after rejection inside window: %v", err)
	}
}

func TestRequiresReviewLeavesOrderUntouched(t *testing.T) {
	uc, orderRepo, _, _ := newTestUsecase()
	seedOrder(orderRepo, domain.StatusPending)

	uploaded, err := uc.UploadProof(uploadInput())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	out, err := uc.ReviewProof(&proofdto.ReviewProofInput{
		ActorID:   "admin-1",
		ActorRole: domain.RoleAdmin,
		ProofID:   uploaded.Proof.ID,
		Decision:  proofdto.DecisionRequiresReview,
	})
	if err != nil {
		t.Fatalf("requires_review: %v", err)
	}
	if out.Proof.VerificationStatus != domain.ProofRequiresReview {
		t.Fatalf("expected requires_review, got %s", out.Proof.VerificationStatus)
	}
	if out.OrderStatus != domain.StatusPending {
		t.Fatalf("expected order untouched, got %s", out.OrderStatus)
	}

	// a held proof can still be decided later
	final, err := uc.ReviewProof(&proofdto.ReviewProofInput{
		ActorID:   "admin-2",
		ActorRole: domain.RoleAdmin,
		ProofID:   uploaded.Proof.ID,
		Decision:  proofdto.DecisionApprove,
	})
	if err != nil {
		t.Fatalf("approve after requires_review: %v", err)
	}
	if final.Proof.VerificationStatus != domain.ProofApproved {
		t.Fatalf("expected approved, got %s", final.Proof.VerificationStatus)
	}
}

func TestReviewGuards(t *testing.T) {
	uc, orderRepo, _, _ := newTestUsecase()
	seedOrder(orderRepo, domain.StatusPending)

	uploaded, err := uc.UploadProof(uploadInput())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	_, err = uc.ReviewProof(&proofdto.ReviewProofInput{
		ActorID:   "vendor-a",
		ActorRole: domain.RoleVendor,
		ProofID:   uploaded.Proof.ID,
		Decision:  proofdto.DecisionApprove,
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for vendor, got %v", err)
	}

	if _, err := uc.ReviewProof(&proofdto.ReviewProofInput{
		ActorID:   "admin-1",
		ActorRole: domain.RoleAdmin,
		ProofID:   uploaded.Proof.ID,
		Decision:  proofdto.DecisionApprove,
	}); err != nil {
		t.Fatalf("approve: %v", err)
	}

	// an approved proof cannot be re-decided
	_, err = uc.ReviewProof(&proofdto.ReviewProofInput{
		ActorID:   "admin-1",
		ActorRole: domain.RoleAdmin,
		ProofID:   uploaded.Proof.ID,
		Decision:  proofdto.DecisionReject,
	})
	if !errors.Is(err, domain.ErrStateConflict) {
		t.Fatalf("expected state conflict on double review, got %v", err)
	}
}

func TestListProofsQueueOrdering(t *testing.T) {
	uc, _, proofRepo, _ := newTestUsecase()

	for i, id := range []string{"proof-1", "proof-2", "proof-3"} {
		proofRepo.proofs[id] = &domain.DeliveryProof{
			ID:                 id,
			OrderID:            "order-" + id,
			VerificationStatus: domain.ProofPending,
			UploadedAt:         baseTime.Add(time.Duration(i) * time.Minute),
		}
	}

	out, err := uc.ListProofs(&proofdto.ListProofsInput{
		ActorID:   "admin-1",
		ActorRole: domain.RoleAdmin,
		Status:    domain.ProofPending,
	})
	if err != nil {
		t.Fatalf("list proofs: %v", err)
	}
	if len(out.Proofs) != 3 {
		t.Fatalf("expected 3 proofs, got %d", len(out.Proofs))
	}
	// pending queue is oldest first
	if out.Proofs[0].ID != "proof-1" || out.Proofs[2].ID != "proof-3" {
		t.Fatalf("unexpected queue order: %s, %s, %s",
			out.Proofs[0].ID, out.Proofs[1].ID, out.Proofs[2].ID)
	}

	_, err = uc.ListProofs(&proofdto.ListProofsInput{
		ActorID:   "vendor-a",
		ActorRole: domain.RoleVendor,
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for vendor, got %v", err)
	}
}
