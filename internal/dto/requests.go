package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FederatedLoginRequest struct {
	IDToken string `json:"idToken"`
}

type VoteRequest struct {
	CandidateID uint `json:"candidateId"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

type RegisterResponse struct {
	UserID uint `json:"userId"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PictureURL string `json:"pictureUrl,omitempty"`
	Verified   bool   `json:"verified"`
}

type VoteResponse struct {
	BallotID uint `json:"ballotId"`
}

type VoteStatus struct {
	HasVoted    bool  `json:"hasVoted"`
	CandidateID *uint `json:"candidateId"`
}

type CandidateResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Party    string `json:"party"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type CandidateResult struct {
	CandidateID uint   `json:"id"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Votes       int64  `json:"votes"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
