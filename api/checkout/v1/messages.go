package checkoutv1

type User struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (x *RegisterRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RegisterRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type RegisterResponse struct {
	User *User `json:"user"`
}

func (x *RegisterResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

func (x *VerifyRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type VerifyResponse struct {
	UserId string `json:"userId"`
}

type CartItem struct {
	ProductId int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type CardData struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	Cvv    string `json:"cvv"`
}

type CheckoutRequest struct {
	Items          []*CartItem `json:"items"`
	FreightCents   int64       `json:"freightCents"`
	PaymentMethod  string      `json:"paymentMethod"`
	Card           *CardData   `json:"card,omitempty"`
	IdempotencyKey string      `json:"idempotencyKey,omitempty"`
}

func (x *CheckoutRequest) GetItems() []*CartItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *CheckoutRequest) GetCard() *CardData {
	if x != nil {
		return x.Card
	}
	return nil
}

type GetOrderRequest struct {
	OrderId string `json:"orderId"`
}

func (x *GetOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type Receipt struct {
	OrderId         string `json:"orderId"`
	UserId          string `json:"userId"`
	ValorFinalCents int64  `json:"valorFinalCents"`
	Status          string `json:"status"`
}
