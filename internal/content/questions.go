// Package content carries the static question seed set. It doubles as the
// fallback source when no Postgres is configured and as the payload for the
// seed CLI command.
package content

import "carv-arcade-service/internal/domain"

func q(id int, topic domain.Topic, difficulty domain.Difficulty, text string, options []string, answer int) domain.FullQuestion {
	return domain.FullQuestion{
		Question: domain.Question{
			ID:         id,
			Topic:      topic,
			Difficulty: difficulty,
			Text:       text,
			Options:    options,
		},
		AnswerIndex: answer,
	}
}

// Questions returns a fresh copy of the seed set so callers can't mutate the
// shared content.
func Questions() []domain.FullQuestion {
	return []domain.FullQuestion{
		// Blockchain - Easy
		q(1, domain.TopicBlockchain, domain.DifficultyEasy, "What is a blockchain?", []string{"A type of database", "A chain of blocks", "A distributed ledger", "All of the above"}, 3),
		q(2, domain.TopicBlockchain, domain.DifficultyEasy, "Who is the creator of Bitcoin?", []string{"Vitalik Buterin", "Satoshi Nakamoto", "Charles Hoskinson", "Elon Musk"}, 1),
		q(3, domain.TopicBlockchain, domain.DifficultyEasy, "What does 'DeFi' stand for?", []string{"Decentralized Finance", "Digital Finance", "Distributed Funding", "Decentralized Funding"}, 0),
		q(4, domain.TopicBlockchain, domain.DifficultyEasy, "What is a 'smart contract'?", []string{"A legally binding digital contract", "A self-executing contract with terms written into code", "A contract that is very intelligent", "A contract for buying smart devices"}, 1),
		q(5, domain.TopicBlockchain, domain.DifficultyEasy, "Which of these is a popular blockchain platform for smart contracts?", []string{"Bitcoin", "Dogecoin", "Ethereum", "Litecoin"}, 2),
		q(6, domain.TopicBlockchain, domain.DifficultyEasy, "What is 'gas' in the context of Ethereum?", []string{"Fuel for cars", "A fee for transactions or computational services", "A type of cryptocurrency", "A networking protocol"}, 1),
		q(7, domain.TopicBlockchain, domain.DifficultyEasy, "What does 'NFT' stand for?", []string{"Non-Fungible Token", "New Financial Technology", "Non-Financial Transaction", "Network Funding Token"}, 0),
		q(8, domain.TopicBlockchain, domain.DifficultyEasy, "What is a 'wallet' in crypto?", []string{"A physical device only", "Software that stores keys and interacts with blockchains", "A bank account", "A type of coin"}, 1),
		q(9, domain.TopicBlockchain, domain.DifficultyEasy, "What is 'mining'?", []string{"Digging for gold", "The process of creating new blocks and verifying transactions", "A type of hacking", "A way to cool down computers"}, 1),
		q(10, domain.TopicBlockchain, domain.DifficultyEasy, "What is a 'private key' used for?", []string{"To share with friends", "To receive funds", "To sign transactions and prove ownership", "To check your balance"}, 2),
		q(11, domain.TopicBlockchain, domain.DifficultyEasy, "What is a public ledger?", []string{"A secret book", "A distributed and public record of all transactions", "A newspaper", "A government database"}, 1),
		q(12, domain.TopicBlockchain, domain.DifficultyEasy, "Which consensus mechanism does Bitcoin use?", []string{"Proof of Stake", "Proof of Authority", "Proof of Work", "Proof of History"}, 2),
		q(13, domain.TopicBlockchain, domain.DifficultyEasy, "What is a 'node'?", []string{"A type of coin", "A participant in a blockchain network that maintains a copy of the ledger", "A central server", "A user's wallet"}, 1),
		q(14, domain.TopicBlockchain, domain.DifficultyEasy, "What does 'HODL' mean in crypto slang?", []string{"Hold On for Dear Life", "A misspelling of 'hold'", "A trading strategy", "All of the above"}, 3),
		q(15, domain.TopicBlockchain, domain.DifficultyEasy, "What is an 'altcoin'?", []string{"A coin with alternative features", "Any cryptocurrency other than Bitcoin", "A coin that is not secure", "A coin used for voting"}, 1),
		q(16, domain.TopicBlockchain, domain.DifficultyEasy, "What is a 'block' in a blockchain?", []string{"A collection of transactions", "A single transaction", "A cryptocurrency", "A user's account"}, 0),
		q(17, domain.TopicBlockchain, domain.DifficultyEasy, "What is a 'fork' in blockchain?", []string{"A split in the blockchain network", "An upgrade to the protocol", "Both a and b", "A type of spoon"}, 2),
		q(18, domain.TopicBlockchain, domain.DifficultyEasy, "What is 'Slippage' in DEX trading?", []string{"The price difference between order and execution", "A network error", "A type of market manipulation", "A feature of a wallet"}, 0),
		q(19, domain.TopicBlockchain, domain.DifficultyEasy, "What is a 'DAO'?", []string{"Digital Asset Organization", "Decentralized Autonomous Organization", "Data Access Object", "Distributed Application Online"}, 1),
		q(20, domain.TopicBlockchain, domain.DifficultyEasy, "What is the primary purpose of a blockchain's consensus mechanism?", []string{"To create new coins", "To agree on the state of the ledger", "To speed up transactions", "To reduce fees"}, 1),

		// Projects - Medium
		q(21, domain.TopicProjects, domain.DifficultyMedium, "Which project is known for its 'Proof of History' consensus mechanism?", []string{"Ethereum", "Cardano", "Solana", "Polkadot"}, 2),
		q(22, domain.TopicProjects, domain.DifficultyMedium, "Uniswap is a popular decentralized exchange (DEX) built on which blockchain?", []string{"Solana", "Ethereum", "Binance Smart Chain", "Avalanche"}, 1),
		q(23, domain.TopicProjects, domain.DifficultyMedium, "What is the main goal of the Polkadot project?", []string{"To be a faster Bitcoin", "To enable cross-blockchain interoperability", "To be a decentralized file storage", "To be a privacy-focused coin"}, 1),
		q(24, domain.TopicProjects, domain.DifficultyMedium, "Chainlink is a decentralized network that provides what service to smart contracts?", []string{"Oracles (real-world data)", "Scalability", "Privacy", "Storage"}, 0),
		q(25, domain.TopicProjects, domain.DifficultyMedium, "Aave is a leading protocol in which DeFi sector?", []string{"Decentralized Exchange", "Yield Farming", "Lending and Borrowing", "Insurance"}, 2),
		q(26, domain.TopicProjects, domain.DifficultyMedium, "Arweave is best known for providing what?", []string{"Permanent decentralized storage", "A layer-2 rollup", "A stablecoin", "A hardware wallet"}, 0),
		q(27, domain.TopicProjects, domain.DifficultyMedium, "The Lightning Network is a scaling solution for which chain?", []string{"Ethereum", "Bitcoin", "Solana", "Cosmos"}, 1),

		// Tokenomics - Hard
		q(41, domain.TopicTokenomics, domain.DifficultyHard, "What is a 'vesting period' in tokenomics?", []string{"The time a token is actively traded", "A period during which tokens are locked and cannot be sold", "The time it takes to mine a token", "The duration of an ICO"}, 1),
		q(42, domain.TopicTokenomics, domain.DifficultyHard, "A deflationary token model typically involves what mechanism?", []string{"Increasing the total supply", "Token burning to reduce supply", "A fixed supply", "Airdropping tokens"}, 1),
		q(43, domain.TopicTokenomics, domain.DifficultyHard, "What does 'FDV' measure for a token?", []string{"Daily trading volume", "Market cap if the entire max supply were circulating", "The validator fee rate", "The fraction held by the team"}, 1),
		q(44, domain.TopicTokenomics, domain.DifficultyHard, "A token 'emission schedule' defines what?", []string{"The order of exchange listings", "The rate at which new tokens enter circulation", "How fees are refunded", "The audit cadence"}, 1),

		// Technical - Hard
		q(61, domain.TopicTechnical, domain.DifficultyHard, "In cryptography, what is the 'double-spending' problem?", []string{"Spending a crypto twice by mistake", "A flaw where the same digital token can be spent more than once", "A network attack that doubles transaction fees", "A user interface bug"}, 1),
		q(62, domain.TopicTechnical, domain.DifficultyHard, "What is a Merkle Tree used for in blockchains?", []string{"To store user data privately", "To efficiently and securely verify the contents of large data structures", "To create new private keys", "To determine gas fees"}, 1),
		q(63, domain.TopicTechnical, domain.DifficultyHard, "What property does an ed25519 signature provide for a signed message?", []string{"Confidentiality", "Compression", "Authenticity and integrity", "Replay protection by itself"}, 2),
		q(64, domain.TopicTechnical, domain.DifficultyHard, "Why do signing protocols include a server-issued nonce in the message?", []string{"To shorten the message", "To bind the signature to one request and prevent replay", "To hide the signer's address", "To make verification faster"}, 1),
	}
}
