package recommendations

import (
	"fmt"
	"strings"

	"recommendation-backend/internal/customers"
	"recommendation-backend/internal/products"
	"recommendation-backend/internal/transactions"
)

// The schema blocks below are the single source of truth for what the parser
// expects; keep them in lock-step with parser.go.

const pickSystemPrompt = "You are a bank product recommendation system. " +
	"Given a list of transactions, pick transactions (transaction_id) " +
	"for which a banking product can be recommended. " +
	"Output a list of JSON objects with the format:\n" +
	"[ {\n" +
	"  \"transaction_id\": \"<the chosen transaction id>\",\n" +
	"  \"category\": \"<the chosen transaction category>\",\n" +
	"  \"description\": \"<the chosen transaction description>\",\n" +
	"  \"type\": \"<the chosen transaction type>\",\n" +
	"  \"reason\": \"<short reason why this product suits the transaction>\"\n" +
	"} ]"

const classifySystemPrompt = "You are an AI assistant specializing in financial product recommendations for bank customers. " +
	"Your task is to analyze a list of recent transactions and determine which transactions are suitable " +
	"for a personalized recommendation. Consider factors such as merchant category, transaction amount, " +
	"available balance, transaction type, and description. Select only transactions that indicate potential " +
	"interest in relevant banking products (e.g., travel transactions may suggest interest in travel insurance, " +
	"large retail purchases may indicate interest in a credit limit increase). " +
	"Output an object containing a list of valid transactions strictly maintaining below format:\n" +
	"{\"valid_transactions\": [\n" +
	"    {\n" +
	"      \"transaction_id\": \"<valid transaction id>\",\n" +
	"      \"reason\": \"<brief reason why this transaction is suitable for recommendation>\"\n" +
	"    }\n" +
	"  ]\n" +
	"}"

// BuildPickPrompts renders the advisory single-pick prompt pair.
func BuildPickPrompts(txs []transactions.Transaction) (system, user string) {
	lines := make([]string, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, fmt.Sprintf(
			"TransactionID: %s, Type: %s, Balance After Transaction: %.2f, Amount: %.2f, Category: %s, Desc: %s",
			tx.TransactionID,
			tx.TransactionType,
			tx.BalanceAfterTransaction,
			tx.Amount,
			tx.MerchantCategory,
			tx.Description,
		))
	}
	user = "Transactions:\n" + strings.Join(lines, "\n") + "\nWhich transactions do you pick?"
	return pickSystemPrompt, user
}

// BuildClassifyPrompts renders the classify-and-commit prompt pair.
func BuildClassifyPrompts(txs []transactions.Transaction) (system, user string) {
	user = "Transactions:\n" + transactionContext(txs) + "\nWhich transactions do you pick?"
	return classifySystemPrompt, user
}

// BuildRankPrompts renders the customer product-ranking prompt pair from the
// customer profile, their processed transactions, and the candidate products.
func BuildRankPrompts(cust customers.Customer, txs []transactions.Transaction, candidates []products.Product) (system, user string) {
	pdLines := make([]string, 0, len(candidates))
	for _, pd := range candidates {
		pdLines = append(pdLines, fmt.Sprintf(
			"product_id: %s, Product Name: %s, Product Type: %s, Product Description: %s, Product Eligibility Criteria: %s",
			pd.ProductID,
			pd.ProductName,
			pd.ProductType,
			pd.Description,
			pd.EligibilityCriteria,
		))
	}

	system = "You are a financial AI assistant specializing in recommending personalized banking products based on customer transactions. " +
		"Your task is to analyze a list of valid transactions and match them with eligible financial products based on the customer's segment. " +
		"Consider the following key factors while making recommendations:\n" +
		"Transaction Type: Identify patterns such as large purchases, frequent travel expenses, or recurring business transactions.\n" +
		"Merchant Category: Recognize spending behaviors that align with specific banking products (e.g., real estate-related payments may indicate interest in commercial real estate financing).\n" +
		"Transaction Amount & Balance: Suggest products that match the customer's financial activity and ensure affordability.\n" +
		"Segment-Based Eligibility: Only recommend products that belong to the customer's designated segment.\n" +
		"Customer Interest: Take into account any explicit product interests the customer has shown in past interactions, applications, or inquiries.\n" +
		"Priority Ranking: Assign a priority to each recommended product based on how well it matches the transaction. A lower number indicates a higher priority (1 = best match).\n" +
		"Here are the **customer interests**\n" + strings.Join(cust.Interests, " ") + "\n" +
		"Customer Credit Score: " + fmt.Sprintf("%d", cust.CreditScore) + "\n" +
		"Here are the **eligible financial products**\n" + strings.Join(pdLines, "\n") + "\n" +
		"Output an object containing a list of valid products strictly maintaining below format:\n" +
		"{\"valid_products\": [\n" +
		"    {\n" +
		"      \"product_id\": \"<valid product id>\",\n" +
		"      \"product_name\": \"<valid product name>\",\n" +
		"      \"reason\": \"<brief reason why this product is suitable for customer>\",\n" +
		"      \"priority\": \"<recommendation priority (1 = highest, increasing number = lower priority)>\"\n" +
		"    }\n" +
		"  ]\n" +
		"}"

	user = "Transactions:\n" + transactionContext(txs) + "\nChoose the most eligible product recommended for the transactions and rank them in order"
	return system, user
}

func transactionContext(txs []transactions.Transaction) string {
	lines := make([]string, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, fmt.Sprintf(
			"TransactionID: %s, Transaction Type: %s, Balance After Transaction: %.2f, Amount: %.2f, Merchant Category: %s, Description: %s",
			tx.TransactionID,
			tx.TransactionType,
			tx.BalanceAfterTransaction,
			tx.Amount,
			tx.MerchantCategory,
			tx.Description,
		))
	}
	return strings.Join(lines, "\n")
}
